package usecase

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/team"
	goalmock "github.com/riskibarqy/football-league/internal/mocks/domain/goal"
	leaguemock "github.com/riskibarqy/football-league/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/football-league/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/football-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListTables_OrdersByStandings(t *testing.T) {
	t.Parallel()

	repos := newFixtureRepos(t)
	standings := NewStandingsService(repos.leagues, repos.standings, nil, 1, discardLogger())
	if err := standings.RecomputeAll(t.Context()); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	service := NewLeagueService(repos.leagues, repos.teams)
	tables, err := service.ListTables(t.Context())
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	if len(tables) != 1 || tables[0].League.ID != fixtureLeagueID {
		t.Fatalf("unexpected tables: %+v", tables)
	}
	if len(tables[0].Teams) != 2 || tables[0].Teams[0].ID != arsenalID {
		t.Fatalf("expected leader first, got %+v", tables[0].Teams)
	}
}

func TestLeagueService_ListTeamsByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)
	leagueID := "la-liga"
	teams := []team.Team{
		{ID: 8, LeagueID: leagueID, Name: "barcelona", Record: team.Record{Matches: 1, Draws: 1, Points: 1}},
		{ID: 7, LeagueID: leagueID, Name: "Real Madrid", Record: team.Record{Matches: 1, Wins: 1, Points: 3}},
		{ID: 9, LeagueID: leagueID, Name: "Atletico Madrid", Record: team.Record{Matches: 1, Draws: 1, Points: 1}},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(teams, nil).
		Once()

	got, err := service.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	wantOrder := []int64{7, 9, 8}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, got[i].ID, id)
		}
	}
}

func TestLeagueService_ListTeamsByLeague_LeagueNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo)
	leagueID := "missing-league"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListTeamsByLeague(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if Message(err) != MsgLeagueNotFound {
		t.Fatalf("unexpected message: %q", Message(err))
	}
}

func TestPlayerService(t *testing.T) {
	t.Parallel()

	repos := newFixtureRepos(t)
	service := NewPlayerService(repos.players, repos.goals)

	players, err := service.ListPlayers(t.Context())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	wantNames := []string{"Cole Captain", "Finn Free", "Fred Free", "Mo Member"}
	if len(players) != len(wantNames) {
		t.Fatalf("unexpected player count: %d", len(players))
	}
	for i, name := range wantNames {
		if players[i].Name != name {
			t.Fatalf("unexpected player at %d: got=%q want=%q", i, players[i].Name, name)
		}
	}
	if players[1].Team != nil {
		t.Fatalf("free agent should have no team, got %+v", players[1].Team)
	}

	found, err := service.FindByEmail(t.Context(), " mo@arsenal.example ")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != memberID || found.Team == nil || found.Team.Name != "Arsenal" || found.Team.LeagueName != "Premier League" {
		t.Fatalf("unexpected player: %+v", found)
	}

	if _, err := service.FindByEmail(t.Context(), "ghost@league.example"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	profile, err := service.GetPlayer(t.Context(), captainID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if profile.Goals != 1 {
		t.Fatalf("expected 1 goal, got %d", profile.Goals)
	}

	if _, err := service.GetPlayer(t.Context(), 999); !errors.Is(err, ErrNotFound) || Message(err) != MsgPlayerNotFound {
		t.Fatalf("expected player not found, got %v", err)
	}
}

func TestPlayerService_GetPlayer_GoalCountFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	playerRepo := playermock.NewRepository(t)
	goalRepo := goalmock.NewRepository(t)
	service := NewPlayerService(playerRepo, goalRepo)

	playerRepo.
		On("GetProfile", mock.Anything, memberID).
		Return(player.Profile{ID: memberID, Name: "Mo Member"}, true, nil).
		Once()
	goalRepo.
		On("CountByPlayer", mock.Anything, memberID).
		Return(0, errors.New("database is locked")).
		Once()

	_, err := service.GetPlayer(ctx, memberID)
	if !crerr.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestTeamService(t *testing.T) {
	t.Parallel()

	repos := newFixtureRepos(t)
	service := NewTeamService(repos.leagues, repos.teams, repos.matches)

	teams, err := service.ListTeams(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 || teams[0].Name != "Arsenal" || teams[0].CaptainName != "Cole Captain" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
	if teams[1].CaptainPlayerID != nil || teams[1].LeagueCountry != "England" {
		t.Fatalf("unexpected second team: %+v", teams[1])
	}

	details, err := service.GetTeamDetails(t.Context(), chelseaID)
	if err != nil {
		t.Fatalf("get team details: %v", err)
	}
	if details.League.ID != fixtureLeagueID {
		t.Fatalf("unexpected league: %+v", details.League)
	}
	if len(details.Upcoming) != 1 || details.Upcoming[0].ID != upcomingMatchID {
		t.Fatalf("unexpected upcoming matches: %+v", details.Upcoming)
	}
	if len(details.Previous) != 1 || details.Previous[0].ID != finishedMatchID {
		t.Fatalf("unexpected previous matches: %+v", details.Previous)
	}

	if _, err := service.GetTeamDetails(t.Context(), 999); !errors.Is(err, ErrNotFound) || Message(err) != MsgTeamNotFound {
		t.Fatalf("expected team not found, got %v", err)
	}
}
