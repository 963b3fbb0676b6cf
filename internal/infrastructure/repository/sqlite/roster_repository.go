package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/roster"
	"github.com/riskibarqy/football-league/internal/domain/team"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

// RosterRepository applies membership changes as conditional writes inside
// write transactions. The DSN opens them with BEGIN IMMEDIATE, so a second
// writer waits for the first to commit and then sees its team_id.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) CreateTeamWithCaptain(ctx context.Context, t team.Team, captainID int64) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx for create team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := requireFreeAgent(ctx, tx, captainID); err != nil {
		return team.Team{}, err
	}

	t.Name = team.NormalizeName(t.Name)
	t.Record = team.Record{}
	t.CaptainPlayerID = &captainID

	query, args, err := qb.InsertInto("teams").
		Columns("league_id", "name", "captain_player_id").
		Values(t.LeagueID, t.Name, captainID).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return team.Team{}, fmt.Errorf("read inserted team id: %w", err)
	}

	if err := assignFreeAgent(ctx, tx, captainID, t.ID); err != nil {
		return team.Team{}, err
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit create team tx: %w", err)
	}
	return t, nil
}

func (r *RosterRepository) AssignToTeam(ctx context.Context, playerID, teamID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for assign to team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := requireFreeAgent(ctx, tx, playerID); err != nil {
		return err
	}
	if err := assignFreeAgent(ctx, tx, playerID, teamID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assign to team tx: %w", err)
	}
	return nil
}

// requireFreeAgent fails fast before any row is written.
func requireFreeAgent(ctx context.Context, tx *sqlx.Tx, playerID int64) error {
	query, args, err := qb.Select("team_id IS NULL").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build free agent query: %w", err)
	}

	var free bool
	if err := tx.GetContext(ctx, &free, query, args...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("player %d not found", playerID)
		}
		return fmt.Errorf("check player %d membership: %w", playerID, err)
	}
	if !free {
		return roster.ErrAlreadyOnTeam
	}
	return nil
}

// assignFreeAgent is the conditional write; zero affected rows means the
// player already has a team.
func assignFreeAgent(ctx context.Context, tx *sqlx.Tx, playerID, teamID int64) error {
	query, args, err := qb.Update("players").
		Set("team_id", teamID).
		Where(qb.Eq("id", playerID), qb.IsNull("team_id")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign team query: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("assign player %d to team %d: %w", playerID, teamID, err)
	}
	changed, err := changedRows(res)
	if err != nil {
		return fmt.Errorf("assign player %d to team %d: %w", playerID, teamID, err)
	}
	if !changed {
		return roster.ErrAlreadyOnTeam
	}
	return nil
}
