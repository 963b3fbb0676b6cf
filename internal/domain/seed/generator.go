package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/goal"
	"github.com/riskibarqy/football-league/internal/domain/league"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/sourcegraph/conc/iter"
)

// FinishedRounds of every double round-robin are played before the start date.
const (
	PlayersPerTeam  = 5
	FinishedRounds  = 6
	roundInterval   = 7 * 24 * time.Hour
	maxGoalsPerTeam = 4
	randomSeed      = 20240817
)

// LeagueSpec describes one seeded league and its clubs.
type LeagueSpec struct {
	ID      string
	Name    string
	Country string
	Teams   []string
}

// DefaultLeagues is the sample content of a fresh store.
func DefaultLeagues() []LeagueSpec {
	return []LeagueSpec{
		{ID: "premier-league", Name: "Premier League", Country: "England", Teams: []string{
			"Manchester City", "Arsenal", "Liverpool", "Chelsea", "Manchester United", "Tottenham",
		}},
		{ID: "la-liga", Name: "La Liga", Country: "Spain", Teams: []string{
			"Real Madrid", "Barcelona", "Atletico Madrid", "Real Sociedad", "Valencia", "Sevilla",
		}},
		{ID: "serie-a", Name: "Serie A", Country: "Italy", Teams: []string{
			"Inter Milan", "Juventus", "AC Milan", "Napoli", "Roma", "Lazio",
		}},
		{ID: "bundesliga", Name: "Bundesliga", Country: "Germany", Teams: []string{
			"Bayern Munich", "Borussia Dortmund", "RB Leipzig", "Bayer Leverkusen", "Eintracht Frankfurt", "Borussia Monchengladbach",
		}},
		{ID: "ligue-1", Name: "Ligue 1", Country: "France", Teams: []string{
			"Paris Saint-Germain", "Marseille", "Lyon", "Nice", "Monaco", "Lille",
		}},
	}
}

var (
	firstNames = []string{
		"Adam", "Bence", "Daniel", "Erik", "Gabor", "Jonas", "Lucas", "Marco", "Mateo", "Noah",
		"Oliver", "Pablo", "Rafael", "Samuel", "Thomas", "Victor", "Willian", "Yannick", "Zoltan", "Hugo",
		"Kai", "Leon",
	}
	lastNames = []string{
		"Silva", "Muller", "Rossi", "Garcia", "Dubois", "Smith", "Kovacs", "Fernandes", "Bianchi", "Schmidt",
		"Martin", "Lopez", "Ricci", "Wagner", "Moreau", "Taylor", "Nagy", "Costa", "Romano", "Fischer",
		"Bernard", "Walker", "Horvath",
	}
)

type leagueOffsets struct {
	index      int
	spec       LeagueSpec
	firstTeam  int64
	firstPlyr  int64
	firstMatch int64
}

type leagueData struct {
	teams   []team.Team
	players []player.Player
	matches []match.Match
	goals   []goal.Goal
}

// Generate builds a deterministic dataset. Matches of the first FinishedRounds
// rounds are finished and dated before start; the rest are upcoming.
func Generate(specs []LeagueSpec, start time.Time) (Dataset, error) {
	offsets := make([]leagueOffsets, 0, len(specs))
	var teamCursor, playerCursor, matchCursor int64 = 1, 1, 1
	for i, spec := range specs {
		if len(spec.Teams) < 2 || len(spec.Teams)%2 != 0 {
			return Dataset{}, fmt.Errorf("league %s needs an even number of teams, got %d", spec.ID, len(spec.Teams))
		}
		offsets = append(offsets, leagueOffsets{
			index:      i,
			spec:       spec,
			firstTeam:  teamCursor,
			firstPlyr:  playerCursor,
			firstMatch: matchCursor,
		})
		n := int64(len(spec.Teams))
		teamCursor += n
		playerCursor += n * PlayersPerTeam
		matchCursor += n * (n - 1)
	}

	perLeague := iter.Map(offsets, func(o *leagueOffsets) leagueData {
		return generateLeague(*o, start)
	})

	var data Dataset
	var goalID int64 = 1
	for i, ld := range perLeague {
		spec := specs[i]
		data.Leagues = append(data.Leagues, league.League{
			ID:      spec.ID,
			Name:    spec.Name,
			Country: spec.Country,
			Season:  league.DefaultSeason,
		})
		data.Teams = append(data.Teams, ld.teams...)
		data.Players = append(data.Players, ld.players...)
		data.Matches = append(data.Matches, ld.matches...)
		for _, g := range ld.goals {
			g.ID = goalID
			goalID++
			data.Goals = append(data.Goals, g)
		}
	}

	return data, nil
}

func generateLeague(o leagueOffsets, start time.Time) leagueData {
	rng := rand.New(rand.NewPCG(randomSeed, uint64(o.index)+1))
	spec := o.spec
	var out leagueData

	roster := make(map[int64][]int64, len(spec.Teams))
	for ti, name := range spec.Teams {
		teamID := o.firstTeam + int64(ti)
		out.teams = append(out.teams, team.Team{ID: teamID, LeagueID: spec.ID, Name: name})

		for pi := 0; pi < PlayersPerTeam; pi++ {
			playerID := o.firstPlyr + int64(ti*PlayersPerTeam+pi)
			seq := int(playerID)
			first := firstNames[seq%len(firstNames)]
			last := lastNames[(seq*7)%len(lastNames)]
			tid := teamID
			out.players = append(out.players, player.Player{
				ID:        playerID,
				Name:      first + " " + last,
				Email:     fmt.Sprintf("%s.%s.%d@%s.example", strings.ToLower(first), strings.ToLower(last), playerID, slug(name)),
				TeamID:    &tid,
				CreatedAt: start.UTC(),
			})
			roster[teamID] = append(roster[teamID], playerID)
		}
	}

	matchID := o.firstMatch
	firstRound := start.Add(-FinishedRounds * roundInterval)
	for round, pairs := range doubleRoundRobin(len(spec.Teams)) {
		kickoff := firstRound.Add(time.Duration(round) * roundInterval)
		for slot, pair := range pairs {
			m := match.Match{
				ID:         matchID,
				LeagueID:   spec.ID,
				HomeTeamID: o.firstTeam + int64(pair[0]),
				AwayTeamID: o.firstTeam + int64(pair[1]),
				Status:     match.StatusUpcoming,
				MatchDate:  kickoff.Add(time.Duration(slot) * 2 * time.Hour).UTC(),
			}
			if round < FinishedRounds {
				home, away := rng.IntN(maxGoalsPerTeam+1), rng.IntN(maxGoalsPerTeam+1)
				m.Status = match.StatusFinished
				m.HomeScore = &home
				m.AwayScore = &away
				out.goals = append(out.goals, scorers(rng, m.ID, m.HomeTeamID, home, roster[m.HomeTeamID])...)
				out.goals = append(out.goals, scorers(rng, m.ID, m.AwayTeamID, away, roster[m.AwayTeamID])...)
			}
			out.matches = append(out.matches, m)
			matchID++
		}
	}

	return out
}

func scorers(rng *rand.Rand, matchID, teamID int64, count int, roster []int64) []goal.Goal {
	goals := make([]goal.Goal, 0, count)
	for i := 0; i < count; i++ {
		goals = append(goals, goal.Goal{
			MatchID:  matchID,
			TeamID:   teamID,
			PlayerID: roster[rng.IntN(len(roster))],
			Minute:   1 + rng.IntN(90),
		})
	}
	return goals
}

// doubleRoundRobin pairs team indexes with the circle method; the second half
// mirrors the first with home and away swapped.
func doubleRoundRobin(n int) [][][2]int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	firstHalf := make([][][2]int, 0, n-1)
	for round := 0; round < n-1; round++ {
		pairs := make([][2]int, 0, n/2)
		for i := 0; i < n/2; i++ {
			a, b := order[i], order[n-1-i]
			if (round+i)%2 == 1 {
				a, b = b, a
			}
			pairs = append(pairs, [2]int{a, b})
		}
		firstHalf = append(firstHalf, pairs)

		last := order[n-1]
		copy(order[2:], order[1:n-1])
		order[1] = last
	}

	rounds := append([][][2]int(nil), firstHalf...)
	for _, pairs := range firstHalf {
		mirrored := make([][2]int, len(pairs))
		for i, p := range pairs {
			mirrored[i] = [2]int{p[1], p[0]}
		}
		rounds = append(rounds, mirrored)
	}
	return rounds
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
