package sqlite

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/team"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

// StandingRepository rebuilds league tables inside BEGIN IMMEDIATE
// transactions. Holding the write lock from the first read keeps a
// concurrent result write from slipping between the match read and the
// counter write.
type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) Recompute(ctx context.Context, leagueID string, compute standing.RecordsFunc) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for recompute: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := recomputeLeague(ctx, tx, leagueID, compute); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit recompute tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) SaveResult(ctx context.Context, matchID int64, homeScore, awayScore int, compute standing.RecordsFunc) (match.Match, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("begin tx for save result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("matches").
		Set("status", match.StatusFinished).
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build save result query: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("save result of match %d: %w", matchID, err)
	}
	changed, err := changedRows(res)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("save result of match %d: %w", matchID, err)
	}
	if !changed {
		return match.Match{}, false, nil
	}

	updated, ok, err := getMatch(ctx, tx, matchID)
	if err != nil {
		return match.Match{}, false, err
	}
	if !ok {
		return match.Match{}, false, fmt.Errorf("save result of match %d: match vanished", matchID)
	}

	if err := recomputeLeague(ctx, tx, updated.LeagueID, compute); err != nil {
		return match.Match{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, false, fmt.Errorf("commit save result tx: %w", err)
	}
	return updated, true, nil
}

func recomputeLeague(ctx context.Context, tx *sqlx.Tx, leagueID string, compute standing.RecordsFunc) error {
	query, args, err := qb.Select("id").From("teams").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select league team ids query: %w", err)
	}
	var teamIDs []int64
	if err := tx.SelectContext(ctx, &teamIDs, query, args...); err != nil {
		return fmt.Errorf("select team ids of league %s: %w", leagueID, err)
	}

	finished, err := listFinishedByLeague(ctx, tx, leagueID)
	if err != nil {
		return err
	}

	return saveRecords(ctx, tx, compute(teamIDs, finished))
}

func listFinishedByLeague(ctx context.Context, q sqlx.QueryerContext, leagueID string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches m").
		Where(
			qb.Eq("m.league_id", leagueID),
			qb.Eq("m.status", match.StatusFinished),
		).
		OrderBy("m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select finished matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select finished matches of league %s: %w", leagueID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// saveRecords overwrites counters in id order; a missing team aborts the
// whole transaction.
func saveRecords(ctx context.Context, tx *sqlx.Tx, records map[int64]team.Record) error {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		record := records[id]
		query, args, err := qb.Update("teams").
			Set("matches", record.Matches).
			Set("wins", record.Wins).
			Set("draws", record.Draws).
			Set("losses", record.Losses).
			Set("points", record.Points).
			Where(qb.Eq("id", id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update team record query: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update team %d record: %w", id, err)
		}
		changed, err := changedRows(res)
		if err != nil {
			return fmt.Errorf("update team %d record: %w", id, err)
		}
		if !changed {
			return fmt.Errorf("update team %d record: team not found", id)
		}
	}
	return nil
}
