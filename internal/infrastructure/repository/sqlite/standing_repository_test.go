package sqlite

import (
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

func TestStandingRepository_Recompute(t *testing.T) {
	t.Parallel()

	db := openFixtureDB(t)
	repo := NewStandingRepository(db)

	if err := repo.Recompute(t.Context(), fixtureLeagueID, standing.Compute); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	want := map[int64]team.Record{
		arsenalID: {Matches: 1, Wins: 1, Points: 3},
		chelseaID: {Matches: 1, Losses: 1},
	}
	teams := NewTeamRepository(db)
	for id, record := range want {
		got, _, err := teams.GetByID(t.Context(), id)
		if err != nil || got.Record != record {
			t.Fatalf("team %d: got %+v want %+v err=%v", id, got.Record, record, err)
		}
	}

	if err := repo.Recompute(t.Context(), "missing-league", standing.Compute); err != nil {
		t.Fatalf("recompute of empty league: %v", err)
	}
}

func TestStandingRepository_SaveResult(t *testing.T) {
	t.Parallel()

	db := openFixtureDB(t)
	repo := NewStandingRepository(db)

	saved, ok, err := repo.SaveResult(t.Context(), upcomingMatchID, 1, 1, standing.Compute)
	if err != nil || !ok {
		t.Fatalf("save result ok=%v err=%v", ok, err)
	}
	if !saved.IsFinished() || saved.LeagueID != fixtureLeagueID || *saved.HomeScore != 1 || *saved.AwayScore != 1 {
		t.Fatalf("unexpected saved match: %+v", saved)
	}

	teams := NewTeamRepository(db)
	arsenal, _, _ := teams.GetByID(t.Context(), arsenalID)
	if want := (team.Record{Matches: 2, Wins: 1, Draws: 1, Points: 4}); arsenal.Record != want {
		t.Fatalf("arsenal: got %+v want %+v", arsenal.Record, want)
	}

	if _, ok, err := repo.SaveResult(t.Context(), 999, 1, 0, standing.Compute); err != nil || ok {
		t.Fatalf("expected unknown match to report false, ok=%v err=%v", ok, err)
	}
}

func TestStandingRepository_SaveResultRollsBackOnRecordFailure(t *testing.T) {
	t.Parallel()

	db := openFixtureDB(t)
	repo := NewStandingRepository(db)

	unknownTeam := func([]int64, []match.Match) map[int64]team.Record {
		return map[int64]team.Record{arsenalID: {Matches: 1, Wins: 1, Points: 3}, 999: {}}
	}
	if _, _, err := repo.SaveResult(t.Context(), upcomingMatchID, 4, 0, unknownTeam); err == nil {
		t.Fatalf("expected error for unknown team")
	}

	m, _, err := NewMatchRepository(db).GetByID(t.Context(), upcomingMatchID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.IsFinished() || m.HomeScore != nil {
		t.Fatalf("result must roll back with the records, got %+v", m)
	}
	arsenal, _, _ := NewTeamRepository(db).GetByID(t.Context(), arsenalID)
	if arsenal.Record != (team.Record{}) {
		t.Fatalf("records must roll back, got %+v", arsenal.Record)
	}
}

func TestStandingRepository_ConcurrentWritesKeepCountersConsistent(t *testing.T) {
	t.Parallel()

	db := openFixtureDB(t)
	repo := NewStandingRepository(db)

	scores := [][2]int{{0, 0}, {2, 0}, {0, 1}, {3, 3}, {1, 0}}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(score [2]int) {
			defer wg.Done()
			if _, _, err := repo.SaveResult(t.Context(), upcomingMatchID, score[0], score[1], standing.Compute); err != nil {
				t.Errorf("save result: %v", err)
			}
		}(scores[i%len(scores)])
		go func() {
			defer wg.Done()
			if err := repo.Recompute(t.Context(), fixtureLeagueID, standing.Compute); err != nil {
				t.Errorf("recompute: %v", err)
			}
		}()
	}
	wg.Wait()

	finished, err := listFinishedByLeague(t.Context(), db, fixtureLeagueID)
	if err != nil || len(finished) != 2 {
		t.Fatalf("list finished %+v err=%v", finished, err)
	}
	want := standing.Compute([]int64{arsenalID, chelseaID}, finished)

	teams := NewTeamRepository(db)
	for id, record := range want {
		got, _, _ := teams.GetByID(t.Context(), id)
		if got.Record != record {
			t.Fatalf("team %d: stored %+v, derived %+v", id, got.Record, record)
		}
	}
}

// A second result written while the first is still deriving counters must
// wait, so the final counters reflect both results.
func TestStandingRepository_GatedWritesDoNotInterleave(t *testing.T) {
	t.Parallel()

	db := openFixtureDB(t)
	repo := NewStandingRepository(db)

	reading := make(chan struct{})
	release := make(chan struct{})
	gated := func(teamIDs []int64, finished []match.Match) map[int64]team.Record {
		close(reading)
		<-release
		return standing.Compute(teamIDs, finished)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, _, err := repo.SaveResult(t.Context(), upcomingMatchID, 3, 0, gated); err != nil {
			t.Errorf("gated save result: %v", err)
		}
	}()
	<-reading
	go func() {
		defer wg.Done()
		if _, _, err := repo.SaveResult(t.Context(), finishedMatchID, 0, 5, standing.Compute); err != nil {
			t.Errorf("overlapping save result: %v", err)
		}
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	want := map[int64]team.Record{
		arsenalID: {Matches: 2, Losses: 2},
		chelseaID: {Matches: 2, Wins: 2, Points: 6},
	}
	teams := NewTeamRepository(db)
	for id, record := range want {
		got, _, _ := teams.GetByID(t.Context(), id)
		if got.Record != record {
			t.Fatalf("team %d: stored %+v, derived %+v", id, got.Record, record)
		}
	}
}
