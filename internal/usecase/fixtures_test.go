package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/seed"
	"github.com/riskibarqy/football-league/internal/domain/session"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

const fixtureLeagueID = "premier-league"

// Fixture ids.
const (
	arsenalID int64 = 1
	chelseaID int64 = 2

	captainID  int64 = 1
	memberID   int64 = 2
	freeFredID int64 = 3
	freeFinnID int64 = 4

	finishedMatchID int64 = 1
	upcomingMatchID int64 = 2
)

var fixtureKickoff = time.Date(2024, 9, 14, 15, 0, 0, 0, time.UTC)

type fixtureRepos struct {
	store     *memory.Store
	leagues   *memory.LeagueRepository
	teams     *memory.TeamRepository
	players   *memory.PlayerRepository
	matches   *memory.MatchRepository
	standings *memory.StandingRepository
	goals     *memory.GoalRepository
	roster    *memory.RosterRepository
	seed      *memory.SeedRepository
}

// newFixtureRepos builds a one-league store: Arsenal (captain + member) beat
// Chelsea 2-1, the return match is upcoming, and two players are free agents.
func newFixtureRepos(t *testing.T) fixtureRepos {
	t.Helper()

	store := memory.NewStore()
	repos := fixtureRepos{
		store:     store,
		leagues:   memory.NewLeagueRepository(store),
		teams:     memory.NewTeamRepository(store),
		players:   memory.NewPlayerRepository(store),
		matches:   memory.NewMatchRepository(store),
		standings: memory.NewStandingRepository(store),
		goals:     memory.NewGoalRepository(store),
		roster:    memory.NewRosterRepository(store),
		seed:      memory.NewSeedRepository(store),
	}

	captain := captainID
	onArsenal := arsenalID
	home, away := 2, 1
	data := seed.Dataset{
		Leagues: []league.League{
			{ID: fixtureLeagueID, Name: "Premier League", Country: "England", Season: league.DefaultSeason},
		},
		Teams: []team.Team{
			{ID: arsenalID, LeagueID: fixtureLeagueID, Name: "Arsenal", CaptainPlayerID: &captain},
			{ID: chelseaID, LeagueID: fixtureLeagueID, Name: "Chelsea"},
		},
		Players: []player.Player{
			{ID: captainID, Name: "Cole Captain", Email: "cole@arsenal.example", TeamID: &onArsenal},
			{ID: memberID, Name: "Mo Member", Email: "mo@arsenal.example", TeamID: &onArsenal},
			{ID: freeFredID, Name: "Fred Free", Email: "fred@free.example"},
			{ID: freeFinnID, Name: "Finn Free", Email: "finn@free.example"},
		},
		Matches: []match.Match{
			{
				ID: finishedMatchID, LeagueID: fixtureLeagueID, HomeTeamID: arsenalID, AwayTeamID: chelseaID,
				Status: match.StatusFinished, MatchDate: fixtureKickoff, HomeScore: &home, AwayScore: &away,
			},
			{
				ID: upcomingMatchID, LeagueID: fixtureLeagueID, HomeTeamID: chelseaID, AwayTeamID: arsenalID,
				Status: match.StatusUpcoming, MatchDate: fixtureKickoff.Add(14 * 24 * time.Hour),
			},
		},
		Goals: []goal.Goal{
			{ID: 1, MatchID: finishedMatchID, TeamID: arsenalID, PlayerID: memberID, Minute: 67},
			{ID: 2, MatchID: finishedMatchID, TeamID: arsenalID, PlayerID: captainID, Minute: 12},
		},
	}
	if err := repos.seed.Write(context.Background(), data); err != nil {
		t.Fatalf("seed fixture store: %v", err)
	}

	return repos
}

// plainHasher marks passwords instead of hashing them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Matches(hash, password string) (bool, error) {
	return hash == "hashed:"+password, nil
}

// stubIssuer encodes the principal into the token.
type stubIssuer struct {
	now time.Time
}

func (s stubIssuer) Issue(_ context.Context, principal session.Principal) (session.Session, error) {
	return session.Session{
		Principal: principal,
		Token:     fmt.Sprintf("token:%d:%s", principal.PlayerID, principal.Email),
		ExpiresAt: s.now.Add(7 * 24 * time.Hour),
	}, nil
}

func (s stubIssuer) Verify(_ context.Context, token string) (session.Principal, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return session.Principal{}, fmt.Errorf("malformed token")
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return session.Principal{}, fmt.Errorf("malformed token subject: %w", err)
	}
	return session.Principal{PlayerID: id, Email: parts[2]}, nil
}

type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) InvalidateListings(context.Context) {
	c.calls.Add(1)
}

func discardLogger() *logging.Logger {
	return logging.NewNop()
}
