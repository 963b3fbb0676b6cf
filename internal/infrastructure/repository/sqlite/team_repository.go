package sqlite

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/team"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

var teamColumns = []string{
	"t.id", "t.league_id", "t.name", "t.captain_player_id",
	"t.matches", "t.wins", "t.draws", "t.losses", "t.points",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Summary, error) {
	columns := append(slices.Clone(teamColumns),
		"l.name AS league_name",
		"l.country AS league_country",
		"COALESCE(p.name, '') AS captain_name",
	)
	query, args, err := qb.Select(columns...).From("teams t").
		Join("leagues l", "l.id = t.league_id").
		LeftJoin("players p", "p.id = t.captain_player_id").
		OrderBy("t.name COLLATE NOCASE", "t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamSummaryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Summary{
			Team:          row.toDomain(),
			LeagueName:    row.LeagueName,
			LeagueCountry: row.LeagueCountry,
			CaptainName:   row.CaptainName,
		})
	}
	return out, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		Where(qb.Eq("t.league_id", leagueID)).
		OrderBy("t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams t").
		Where(qb.Eq("t.id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return row.toDomain(), true, nil
}
