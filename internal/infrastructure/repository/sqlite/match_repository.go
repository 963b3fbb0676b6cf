package sqlite

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/match"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

var matchColumns = []string{
	"m.id", "m.league_id", "m.home_team_id", "m.away_team_id",
	"m.status", "m.match_date", "m.home_score", "m.away_score",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return getMatch(ctx, r.db, matchID)
}

func getMatch(ctx context.Context, q sqlx.QueryerContext, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches m").
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match %d: %w", matchID, err)
	}

	out, err := row.toDomain()
	if err != nil {
		return match.Match{}, false, err
	}
	return out, true, nil
}

func (r *MatchRepository) summaryQuery() *qb.SelectBuilder {
	columns := append(slices.Clone(matchColumns),
		"h.name AS home_name",
		"a.name AS away_name",
		"l.name AS league_name",
		"l.country AS league_country",
	)
	return qb.Select(columns...).From("matches m").
		Join("teams h", "h.id = m.home_team_id").
		Join("teams a", "a.id = m.away_team_id").
		Join("leagues l", "l.id = m.league_id")
}

func (r *MatchRepository) GetSummary(ctx context.Context, matchID int64) (match.Summary, bool, error) {
	query, args, err := r.summaryQuery().
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Summary{}, false, fmt.Errorf("build get match summary query: %w", err)
	}

	var row matchSummaryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Summary{}, false, nil
		}
		return match.Summary{}, false, fmt.Errorf("get match summary %d: %w", matchID, err)
	}

	out, err := row.toDomain()
	if err != nil {
		return match.Summary{}, false, err
	}
	return out, true, nil
}

func (r *MatchRepository) ListUpcomingByTeam(ctx context.Context, teamID int64, limit int) ([]match.Summary, error) {
	return r.listByTeam(ctx, teamID, match.StatusUpcoming, limit, "m.match_date ASC", "m.id ASC")
}

func (r *MatchRepository) ListFinishedByTeam(ctx context.Context, teamID int64, limit int) ([]match.Summary, error) {
	return r.listByTeam(ctx, teamID, match.StatusFinished, limit, "m.match_date DESC", "m.id DESC")
}

func (r *MatchRepository) listByTeam(ctx context.Context, teamID int64, status string, limit int, orderBy ...string) ([]match.Summary, error) {
	query, args, err := r.summaryQuery().
		Where(
			qb.Or(qb.Eq("m.home_team_id", teamID), qb.Eq("m.away_team_id", teamID)),
			qb.Eq("m.status", status),
		).
		OrderBy(orderBy...).
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s matches by team query: %w", status, err)
	}

	var rows []matchSummaryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s matches of team %d: %w", status, teamID, err)
	}

	out := make([]match.Summary, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
