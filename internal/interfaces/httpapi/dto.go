package httpapi

import (
	"time"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/session"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updatePlayerRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type createTeamRequest struct {
	Name     string `json:"name"`
	LeagueID string `json:"leagueId"`
	PlayerID flexID `json:"playerId"`
}

type joinTeamRequest struct {
	PlayerID flexID `json:"playerId"`
}

type recruitRequest struct {
	CaptainID flexID `json:"captainId"`
	PlayerID  flexID `json:"playerId"`
}

type recordResultRequest struct {
	HomeScore *int `json:"homeScore" validate:"required,min=0"`
	AwayScore *int `json:"awayScore" validate:"required,min=0"`
}

type recordGoalRequest struct {
	TeamID   flexID `json:"teamId" validate:"required,gt=0"`
	PlayerID flexID `json:"playerId" validate:"required,gt=0"`
	Minute   *int   `json:"minute" validate:"required,min=0,max=130"`
}

type sessionDTO struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Email   string `json:"email"`
}

type standingTeamDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
	Draws   int    `json:"draws"`
	Losses  int    `json:"losses"`
	Points  int    `json:"points"`
}

type leagueDTO struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Country string            `json:"country"`
	Teams   []standingTeamDTO `json:"teams"`
}

type leagueRefDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type teamRefDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LeagueName string `json:"leagueName"`
}

type playerDTO struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Team  *teamRefDTO `json:"team"`
}

type playerDetailDTO struct {
	playerDTO
	Goals int `json:"goals"`
}

type updatedPlayerDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type teamListItemDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	LeagueID        string `json:"leagueId"`
	LeagueName      string `json:"leagueName"`
	LeagueCountry   string `json:"leagueCountry"`
	CaptainPlayerID *int64 `json:"captainPlayerId"`
	CaptainName     string `json:"captainName,omitempty"`
	Matches         int    `json:"matches"`
	Wins            int    `json:"wins"`
	Draws           int    `json:"draws"`
	Losses          int    `json:"losses"`
	Points          int    `json:"points"`
}

type teamDetailDTO struct {
	standingTeamDTO
	CaptainPlayerID *int64       `json:"captainPlayerId"`
	League          leagueRefDTO `json:"league"`
}

type matchSummaryDTO struct {
	ID            int64  `json:"id"`
	MatchDate     string `json:"matchDate"`
	Status        string `json:"status"`
	HomeTeamID    int64  `json:"homeTeamId"`
	AwayTeamID    int64  `json:"awayTeamId"`
	HomeScore     *int   `json:"homeScore"`
	AwayScore     *int   `json:"awayScore"`
	HomeName      string `json:"homeName"`
	AwayName      string `json:"awayName"`
	LeagueName    string `json:"leagueName"`
	LeagueCountry string `json:"leagueCountry"`
}

type matchSideDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type goalDTO struct {
	ID         int64  `json:"id"`
	Minute     int    `json:"minute"`
	TeamID     int64  `json:"teamId"`
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamName   string `json:"teamName"`
}

type matchDetailDTO struct {
	ID            int64        `json:"id"`
	LeagueID      string       `json:"leagueId"`
	LeagueName    string       `json:"leagueName"`
	LeagueCountry string       `json:"leagueCountry"`
	Status        string       `json:"status"`
	MatchDate     string       `json:"matchDate"`
	HomeTeam      matchSideDTO `json:"homeTeam"`
	AwayTeam      matchSideDTO `json:"awayTeam"`
	HomeScore     *int         `json:"homeScore"`
	AwayScore     *int         `json:"awayScore"`
	Goals         []goalDTO    `json:"goals"`
}

type matchDTO struct {
	ID         int64  `json:"id"`
	LeagueID   string `json:"leagueId"`
	Status     string `json:"status"`
	MatchDate  string `json:"matchDate"`
	HomeTeamID int64  `json:"homeTeamId"`
	AwayTeamID int64  `json:"awayTeamId"`
	HomeScore  *int   `json:"homeScore"`
	AwayScore  *int   `json:"awayScore"`
}

func formatMatchDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func sessionToDTO(s session.Session) sessionDTO {
	return sessionDTO{Success: true, Token: s.Token, Email: s.Email}
}

func standingTeamToDTO(t team.Team) standingTeamDTO {
	return standingTeamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Matches: t.Record.Matches,
		Wins:    t.Record.Wins,
		Draws:   t.Record.Draws,
		Losses:  t.Record.Losses,
		Points:  t.Record.Points,
	}
}

func standingTeamsToDTO(teams []team.Team) []standingTeamDTO {
	items := make([]standingTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, standingTeamToDTO(t))
	}
	return items
}

func leagueTableToDTO(table usecase.LeagueTable) leagueDTO {
	return leagueDTO{
		ID:      table.League.ID,
		Name:    table.League.Name,
		Country: table.League.Country,
		Teams:   standingTeamsToDTO(table.Teams),
	}
}

func leagueToRefDTO(l league.League) leagueRefDTO {
	return leagueRefDTO{ID: l.ID, Name: l.Name, Country: l.Country}
}

func playerToDTO(p player.Profile) playerDTO {
	item := playerDTO{ID: p.ID, Name: p.Name, Email: p.Email}
	if p.Team != nil {
		item.Team = &teamRefDTO{ID: p.Team.ID, Name: p.Team.Name, LeagueName: p.Team.LeagueName}
	}
	return item
}

func teamSummaryToDTO(t team.Summary) teamListItemDTO {
	return teamListItemDTO{
		ID:              t.ID,
		Name:            t.Name,
		LeagueID:        t.LeagueID,
		LeagueName:      t.LeagueName,
		LeagueCountry:   t.LeagueCountry,
		CaptainPlayerID: t.CaptainPlayerID,
		CaptainName:     t.CaptainName,
		Matches:         t.Record.Matches,
		Wins:            t.Record.Wins,
		Draws:           t.Record.Draws,
		Losses:          t.Record.Losses,
		Points:          t.Record.Points,
	}
}

func matchSummariesToDTO(items []match.Summary) []matchSummaryDTO {
	out := make([]matchSummaryDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchSummaryDTO{
			ID:            m.ID,
			MatchDate:     formatMatchDate(m.MatchDate),
			Status:        match.NormalizeStatus(m.Status),
			HomeTeamID:    m.HomeTeamID,
			AwayTeamID:    m.AwayTeamID,
			HomeScore:     m.HomeScore,
			AwayScore:     m.AwayScore,
			HomeName:      m.HomeName,
			AwayName:      m.AwayName,
			LeagueName:    m.LeagueName,
			LeagueCountry: m.LeagueCountry,
		})
	}
	return out
}

func goalsToDTO(entries []goal.Entry) []goalDTO {
	out := make([]goalDTO, 0, len(entries))
	for _, g := range entries {
		out = append(out, goalDTO{
			ID:         g.ID,
			Minute:     g.Minute,
			TeamID:     g.TeamID,
			PlayerID:   g.PlayerID,
			PlayerName: g.PlayerName,
			TeamName:   g.TeamName,
		})
	}
	return out
}

func matchDetailsToDTO(details usecase.MatchDetails) matchDetailDTO {
	m := details.Match
	return matchDetailDTO{
		ID:            m.ID,
		LeagueID:      m.LeagueID,
		LeagueName:    m.LeagueName,
		LeagueCountry: m.LeagueCountry,
		Status:        match.NormalizeStatus(m.Status),
		MatchDate:     formatMatchDate(m.MatchDate),
		HomeTeam:      matchSideDTO{ID: m.HomeTeamID, Name: m.HomeName},
		AwayTeam:      matchSideDTO{ID: m.AwayTeamID, Name: m.AwayName},
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Goals:         goalsToDTO(details.Goals),
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		LeagueID:   m.LeagueID,
		Status:     match.NormalizeStatus(m.Status),
		MatchDate:  formatMatchDate(m.MatchDate),
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
	}
}
