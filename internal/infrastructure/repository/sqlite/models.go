package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

type leagueTableModel struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
	Season  string `db:"season"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{ID: m.ID, Name: m.Name, Country: m.Country, Season: m.Season}
}

type teamTableModel struct {
	ID              int64         `db:"id"`
	LeagueID        string        `db:"league_id"`
	Name            string        `db:"name"`
	CaptainPlayerID sql.NullInt64 `db:"captain_player_id"`
	Matches         int           `db:"matches"`
	Wins            int           `db:"wins"`
	Draws           int           `db:"draws"`
	Losses          int           `db:"losses"`
	Points          int           `db:"points"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:              m.ID,
		LeagueID:        m.LeagueID,
		Name:            m.Name,
		CaptainPlayerID: nullInt64Ptr(m.CaptainPlayerID),
		Record: team.Record{
			Matches: m.Matches,
			Wins:    m.Wins,
			Draws:   m.Draws,
			Losses:  m.Losses,
			Points:  m.Points,
		},
	}
}

type teamSummaryModel struct {
	teamTableModel
	LeagueName    string `db:"league_name"`
	LeagueCountry string `db:"league_country"`
	CaptainName   string `db:"captain_name"`
}

type playerTableModel struct {
	ID           int64         `db:"id"`
	Name         string        `db:"name"`
	Email        string        `db:"email"`
	PasswordHash string        `db:"password_hash"`
	TeamID       sql.NullInt64 `db:"team_id"`
	CreatedAt    string        `db:"created_at"`
}

func (m playerTableModel) toDomain() (player.Player, error) {
	createdAt, err := parseTimestamp(m.CreatedAt)
	if err != nil {
		return player.Player{}, err
	}
	return player.Player{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		TeamID:       nullInt64Ptr(m.TeamID),
		CreatedAt:    createdAt,
	}, nil
}

type playerProfileModel struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	Email      string         `db:"email"`
	TeamID     sql.NullInt64  `db:"team_id"`
	TeamName   sql.NullString `db:"team_name"`
	LeagueName sql.NullString `db:"league_name"`
}

func (m playerProfileModel) toDomain() player.Profile {
	profile := player.Profile{ID: m.ID, Name: m.Name, Email: m.Email}
	if m.TeamID.Valid {
		profile.Team = &player.TeamRef{
			ID:         m.TeamID.Int64,
			Name:       m.TeamName.String,
			LeagueName: m.LeagueName.String,
		}
	}
	return profile
}

type matchTableModel struct {
	ID         int64         `db:"id"`
	LeagueID   string        `db:"league_id"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	Status     string        `db:"status"`
	MatchDate  string        `db:"match_date"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
}

func (m matchTableModel) toDomain() (match.Match, error) {
	date, err := parseTimestamp(m.MatchDate)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %d: %w", m.ID, err)
	}
	return match.Match{
		ID:         m.ID,
		LeagueID:   m.LeagueID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		Status:     match.NormalizeStatus(m.Status),
		MatchDate:  date,
		HomeScore:  nullIntPtr(m.HomeScore),
		AwayScore:  nullIntPtr(m.AwayScore),
	}, nil
}

type matchSummaryModel struct {
	matchTableModel
	HomeName      string `db:"home_name"`
	AwayName      string `db:"away_name"`
	LeagueName    string `db:"league_name"`
	LeagueCountry string `db:"league_country"`
}

func (m matchSummaryModel) toDomain() (match.Summary, error) {
	base, err := m.matchTableModel.toDomain()
	if err != nil {
		return match.Summary{}, err
	}
	return match.Summary{
		Match:         base,
		HomeName:      m.HomeName,
		AwayName:      m.AwayName,
		LeagueName:    m.LeagueName,
		LeagueCountry: m.LeagueCountry,
	}, nil
}

type goalTableModel struct {
	ID       int64 `db:"id"`
	MatchID  int64 `db:"match_id"`
	TeamID   int64 `db:"team_id"`
	PlayerID int64 `db:"player_id"`
	Minute   int   `db:"minute"`
}

type goalEntryModel struct {
	goalTableModel
	PlayerName string `db:"player_name"`
	TeamName   string `db:"team_name"`
}

func (m goalEntryModel) toDomain() goal.Entry {
	return goal.Entry{
		Goal: goal.Goal{
			ID:       m.ID,
			MatchID:  m.MatchID,
			TeamID:   m.TeamID,
			PlayerID: m.PlayerID,
			Minute:   m.Minute,
		},
		PlayerName: m.PlayerName,
		TeamName:   m.TeamName,
	}
}
