package standing

import (
	"math/rand/v2"
	"testing"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/team"
)

func finished(id, home, away int64, homeScore, awayScore int) match.Match {
	return match.Match{
		ID:         id,
		LeagueID:   "premier-league",
		HomeTeamID: home,
		AwayTeamID: away,
		Status:     match.StatusFinished,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
	}
}

func TestCompute_HomeWin(t *testing.T) {
	t.Parallel()

	records := Compute([]int64{1, 2}, []match.Match{finished(1, 1, 2, 2, 1)})

	home, away := records[1], records[2]
	if home.Wins != 1 || home.Points != 3 || home.Matches != 1 {
		t.Fatalf("unexpected home record: %+v", home)
	}
	if away.Losses != 1 || away.Points != 0 || away.Matches != 1 {
		t.Fatalf("unexpected away record: %+v", away)
	}
}

func TestCompute_Draw(t *testing.T) {
	t.Parallel()

	records := Compute([]int64{1, 2}, []match.Match{finished(1, 1, 2, 1, 1)})
	for _, id := range []int64{1, 2} {
		r := records[id]
		if r.Draws != 1 || r.Points != 1 || r.Matches != 1 {
			t.Fatalf("unexpected record for team %d: %+v", id, r)
		}
	}
}

func TestCompute_IgnoresUpcomingAndForeignTeams(t *testing.T) {
	t.Parallel()

	upcoming := match.Match{ID: 2, HomeTeamID: 1, AwayTeamID: 2, Status: match.StatusUpcoming}
	records := Compute([]int64{1, 2}, []match.Match{upcoming, finished(3, 1, 99, 5, 0)})

	for _, id := range []int64{1, 2} {
		if records[id] != (team.Record{}) {
			t.Fatalf("expected empty record for team %d, got %+v", id, records[id])
		}
	}
	if _, ok := records[99]; ok {
		t.Fatalf("team outside the league must not get a record")
	}
}

func TestCompute_InvariantsHoldForRandomSeasons(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	teamIDs := []int64{1, 2, 3, 4, 5, 6}

	for season := 0; season < 50; season++ {
		var matches []match.Match
		drawnMatches := 0
		for i := 0; i < 40; i++ {
			home := teamIDs[rng.IntN(len(teamIDs))]
			away := teamIDs[rng.IntN(len(teamIDs))]
			if home == away {
				continue
			}
			h, a := rng.IntN(5), rng.IntN(5)
			if h == a {
				drawnMatches++
			}
			matches = append(matches, finished(int64(i+1), home, away, h, a))
		}

		records := Compute(teamIDs, matches)

		var points, wins, draws, losses, played int
		for _, r := range records {
			if err := r.Validate(); err != nil {
				t.Fatalf("season %d: %v", season, err)
			}
			points += r.Points
			wins += r.Wins
			draws += r.Draws
			losses += r.Losses
			played += r.Matches
		}
		if points != 3*wins+draws {
			t.Fatalf("season %d: points=%d wins=%d draws=%d", season, points, wins, draws)
		}
		if draws != 2*drawnMatches {
			t.Fatalf("season %d: draws=%d drawn matches=%d", season, draws, drawnMatches)
		}
		if wins != losses {
			t.Fatalf("season %d: wins=%d losses=%d", season, wins, losses)
		}
		if played != 2*len(matches) {
			t.Fatalf("season %d: played=%d matches=%d", season, played, len(matches))
		}

		reversed := make([]match.Match, len(matches))
		for i := range matches {
			reversed[len(matches)-1-i] = matches[i]
		}
		again := Compute(teamIDs, reversed)
		for id, r := range records {
			if again[id] != r {
				t.Fatalf("season %d: order dependent result for team %d", season, id)
			}
		}
	}
}

func TestOrder_PointsThenNameIgnoringCase(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Name: "lazio", Record: team.Record{Points: 22}},
		{ID: 2, Name: "Roma", Record: team.Record{Points: 26}},
		{ID: 3, Name: "AC Milan", Record: team.Record{Points: 26}},
		{ID: 4, Name: "Inter Milan", Record: team.Record{Points: 37}},
		{ID: 5, Name: "Juventus", Record: team.Record{Points: 22}},
	}
	Order(teams)

	want := []int64{4, 3, 2, 5, 1}
	for i, id := range want {
		if teams[i].ID != id {
			t.Fatalf("position %d: got team %d (%s) want %d", i, teams[i].ID, teams[i].Name, id)
		}
	}
}

func TestOrder_FoldsOnlyASCIILetters(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Name: "Újpest"},
		{ID: 2, Name: "union"},
		{ID: 3, Name: "Budapest Honvéd"},
		{ID: 4, Name: "budapest Honvéd"},
	}
	Order(teams)

	want := []int64{3, 4, 2, 1}
	for i, id := range want {
		if teams[i].ID != id {
			t.Fatalf("position %d: got team %d (%s) want %d", i, teams[i].ID, teams[i].Name, id)
		}
	}
}
