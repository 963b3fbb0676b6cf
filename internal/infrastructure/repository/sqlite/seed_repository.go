package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/seed"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

// seedBatchSize keeps multi-row inserts well under the SQLite bind limit.
const seedBatchSize = 100

var errStoreNotEmpty = errors.New("store already holds leagues")

type SeedRepository struct {
	db *sqlx.DB
}

func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

func (r *SeedRepository) IsEmpty(ctx context.Context) (bool, error) {
	return leaguesEmpty(ctx, r.db)
}

func leaguesEmpty(ctx context.Context, q sqlx.QueryerContext) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("leagues").ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count leagues query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, q, &count, query, args...); err != nil {
		return false, fmt.Errorf("count leagues: %w", err)
	}
	return count == 0, nil
}

// Write inserts the dataset with its ids as given in one transaction.
func (r *SeedRepository) Write(ctx context.Context, data seed.Dataset) error {
	if err := data.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for seed: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	empty, err := leaguesEmpty(ctx, tx)
	if err != nil {
		return err
	}
	if !empty {
		return errStoreNotEmpty
	}

	leagues := make([]leagueTableModel, 0, len(data.Leagues))
	for _, l := range data.Leagues {
		leagues = append(leagues, leagueTableModel{ID: l.ID, Name: l.Name, Country: l.Country, Season: l.Season})
	}
	teams := make([]teamTableModel, 0, len(data.Teams))
	for _, t := range data.Teams {
		teams = append(teams, teamTableModel{
			ID:              t.ID,
			LeagueID:        t.LeagueID,
			Name:            t.Name,
			CaptainPlayerID: int64PtrToNull(t.CaptainPlayerID),
			Matches:         t.Record.Matches,
			Wins:            t.Record.Wins,
			Draws:           t.Record.Draws,
			Losses:          t.Record.Losses,
			Points:          t.Record.Points,
		})
	}
	players := make([]playerTableModel, 0, len(data.Players))
	for _, p := range data.Players {
		players = append(players, playerTableModel{
			ID:           p.ID,
			Name:         p.Name,
			Email:        p.Email,
			PasswordHash: p.PasswordHash,
			TeamID:       int64PtrToNull(p.TeamID),
			CreatedAt:    formatTimestamp(p.CreatedAt),
		})
	}
	matches := make([]matchTableModel, 0, len(data.Matches))
	for _, m := range data.Matches {
		matches = append(matches, matchTableModel{
			ID:         m.ID,
			LeagueID:   m.LeagueID,
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			Status:     m.Status,
			MatchDate:  formatTimestamp(m.MatchDate),
			HomeScore:  intPtrToNull(m.HomeScore),
			AwayScore:  intPtrToNull(m.AwayScore),
		})
	}
	goals := make([]goalTableModel, 0, len(data.Goals))
	for _, g := range data.Goals {
		goals = append(goals, goalTableModel{ID: g.ID, MatchID: g.MatchID, TeamID: g.TeamID, PlayerID: g.PlayerID, Minute: g.Minute})
	}

	if err := insertBatches(ctx, tx, "leagues", leagues); err != nil {
		return err
	}
	if err := insertBatches(ctx, tx, "teams", teams); err != nil {
		return err
	}
	if err := insertBatches(ctx, tx, "players", players); err != nil {
		return err
	}
	if err := insertBatches(ctx, tx, "matches", matches); err != nil {
		return err
	}
	if err := insertBatches(ctx, tx, "goals", goals); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func insertBatches[T any](ctx context.Context, tx *sqlx.Tx, table string, rows []T) error {
	for start := 0; start < len(rows); start += seedBatchSize {
		end := min(start+seedBatchSize, len(rows))
		query, args, err := qb.InsertModels(table, rows[start:end])
		if err != nil {
			return fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, start, end, err)
		}
	}
	return nil
}
