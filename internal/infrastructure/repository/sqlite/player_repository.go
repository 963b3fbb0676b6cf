package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/player"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

var playerColumns = []string{"id", "name", "email", "password_hash", "team_id", "created_at"}

var profileColumns = []string{
	"p.id", "p.name", "p.email", "p.team_id",
	"t.name AS team_name", "l.name AS league_name",
}

type PlayerRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db, now: time.Now}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now()
	}
	p.CreatedAt = p.CreatedAt.UTC().Truncate(time.Second)

	query, args, err := qb.InsertInto("players").
		Columns("name", "email", "password_hash", "team_id", "created_at").
		Values(p.Name, p.Email, p.PasswordHash, int64PtrToNull(p.TeamID), formatTimestamp(p.CreatedAt)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrEmailTaken
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return player.Player{}, fmt.Errorf("read inserted player id: %w", err)
	}

	return p, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("id", playerID))
}

func (r *PlayerRepository) GetByEmail(ctx context.Context, email string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("email", email))
}

func (r *PlayerRepository) getOne(ctx context.Context, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").
		Where(cond).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player %d: %w", row.ID, err)
	}
	return out, true, nil
}

func (r *PlayerRepository) EmailTakenByOther(ctx context.Context, email string, playerID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(1)").From("players").
		Where(
			qb.Eq("email", email),
			qb.Expr("id <> ?", playerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build email taken query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check email taken: %w", err)
	}
	return count > 0, nil
}

func (r *PlayerRepository) UpdateCredentials(ctx context.Context, playerID int64, update player.CredentialsUpdate) (player.Player, error) {
	if !update.IsEmpty() {
		builder := qb.Update("players").Where(qb.Eq("id", playerID))
		if update.Email != nil {
			builder.Set("email", *update.Email)
		}
		if update.PasswordHash != nil {
			builder.Set("password_hash", *update.PasswordHash)
		}
		query, args, err := builder.ToSQL()
		if err != nil {
			return player.Player{}, fmt.Errorf("build update credentials query: %w", err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return player.Player{}, player.ErrEmailTaken
			}
			return player.Player{}, fmt.Errorf("update player %d credentials: %w", playerID, err)
		}
		changed, err := changedRows(res)
		if err != nil {
			return player.Player{}, fmt.Errorf("update player %d credentials: %w", playerID, err)
		}
		if !changed {
			return player.Player{}, fmt.Errorf("update player %d credentials: player not found", playerID)
		}
	}

	updated, ok, err := r.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	if !ok {
		return player.Player{}, fmt.Errorf("update player %d credentials: player not found", playerID)
	}
	return updated, nil
}

func (r *PlayerRepository) profileQuery() *qb.SelectBuilder {
	return qb.Select(profileColumns...).From("players p").
		LeftJoin("teams t", "t.id = p.team_id").
		LeftJoin("leagues l", "l.id = t.league_id")
}

func (r *PlayerRepository) ListProfiles(ctx context.Context) ([]player.Profile, error) {
	query, args, err := r.profileQuery().
		OrderBy("p.name COLLATE NOCASE", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerProfileModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetProfile(ctx context.Context, playerID int64) (player.Profile, bool, error) {
	return r.getProfile(ctx, qb.Eq("p.id", playerID))
}

func (r *PlayerRepository) GetProfileByEmail(ctx context.Context, email string) (player.Profile, bool, error) {
	return r.getProfile(ctx, qb.Eq("p.email", email))
}

func (r *PlayerRepository) getProfile(ctx context.Context, cond qb.Condition) (player.Profile, bool, error) {
	query, args, err := r.profileQuery().Where(cond).ToSQL()
	if err != nil {
		return player.Profile{}, false, fmt.Errorf("build get player profile query: %w", err)
	}

	var row playerProfileModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Profile{}, false, nil
		}
		return player.Profile{}, false, fmt.Errorf("get player profile: %w", err)
	}
	return row.toDomain(), true, nil
}
