package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/goal"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Entry, error) {
	query, args, err := qb.Select(
		"g.id", "g.match_id", "g.team_id", "g.player_id", "g.minute",
		"p.name AS player_name", "t.name AS team_name",
	).From("goals g").
		Join("players p", "p.id = g.player_id").
		Join("teams t", "t.id = g.team_id").
		Where(qb.Eq("g.match_id", matchID)).
		OrderBy("g.minute", "g.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	var rows []goalEntryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals of match %d: %w", matchID, err)
	}

	out := make([]goal.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GoalRepository) CountByPlayer(ctx context.Context, playerID int64) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("goals").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count goals query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count goals of player %d: %w", playerID, err)
	}
	return count, nil
}

func (r *GoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	query, args, err := qb.InsertInto("goals").
		Columns("match_id", "team_id", "player_id", "minute").
		Values(g.MatchID, g.TeamID, g.PlayerID, g.Minute).
		ToSQL()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("build insert goal query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return goal.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	g.ID, err = res.LastInsertId()
	if err != nil {
		return goal.Goal{}, fmt.Errorf("read inserted goal id: %w", err)
	}
	return g, nil
}
