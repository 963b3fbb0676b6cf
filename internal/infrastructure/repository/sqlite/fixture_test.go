package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/seed"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

const fixtureLeagueID = "premier-league"

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

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(t.Context(), Options{
		Path:        filepath.Join(t.TempDir(), "league.db"),
		BusyTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fixtureDataset() seed.Dataset {
	captain := captainID
	onArsenal := arsenalID
	home, away := 2, 1
	return seed.Dataset{
		Leagues: []league.League{
			{ID: fixtureLeagueID, Name: "Premier League", Country: "England", Season: league.DefaultSeason},
		},
		Teams: []team.Team{
			{ID: arsenalID, LeagueID: fixtureLeagueID, Name: "Arsenal", CaptainPlayerID: &captain},
			{ID: chelseaID, LeagueID: fixtureLeagueID, Name: "chelsea"},
		},
		Players: []player.Player{
			{ID: captainID, Name: "Cole Captain", Email: "cole@arsenal.example", TeamID: &onArsenal, CreatedAt: fixtureKickoff},
			{ID: memberID, Name: "Mo Member", Email: "mo@arsenal.example", TeamID: &onArsenal, CreatedAt: fixtureKickoff},
			{ID: freeFredID, Name: "Fred Free", Email: "fred@free.example", CreatedAt: fixtureKickoff},
			{ID: freeFinnID, Name: "finn Free", Email: "finn@free.example", CreatedAt: fixtureKickoff},
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
			{ID: 3, MatchID: finishedMatchID, TeamID: arsenalID, PlayerID: memberID, Minute: 12},
		},
	}
}

// openFixtureDB returns a migrated database holding fixtureDataset.
func openFixtureDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db := openTestDB(t)
	if err := NewSeedRepository(db).Write(t.Context(), fixtureDataset()); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return db
}
