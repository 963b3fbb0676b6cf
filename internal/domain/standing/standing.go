package standing

import (
	"sort"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/team"
	"github.com/riskibarqy/football-league/internal/platform/nocase"
)

// Compute tallies a fresh record for every team in teamIDs from the finished
// matches. Matches that are not finished or reference teams outside teamIDs
// are ignored. The result does not depend on match order.
func Compute(teamIDs []int64, matches []match.Match) map[int64]team.Record {
	records := make(map[int64]team.Record, len(teamIDs))
	for _, id := range teamIDs {
		records[id] = team.Record{}
	}

	for _, m := range matches {
		if !m.IsFinished() || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		home, homeOK := records[m.HomeTeamID]
		away, awayOK := records[m.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}

		home.Matches++
		away.Matches++
		switch {
		case *m.HomeScore > *m.AwayScore:
			home.Wins++
			away.Losses++
		case *m.HomeScore < *m.AwayScore:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}

		records[m.HomeTeamID] = withPoints(home)
		records[m.AwayTeamID] = withPoints(away)
	}

	return records
}

func withPoints(r team.Record) team.Record {
	r.Points = r.Wins*team.PointsForWin + r.Draws*team.PointsForDraw
	return r
}

// Order sorts teams by points descending, then name ascending ignoring ASCII
// case, then id.
func Order(teams []team.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		return less(teams[i], teams[j])
	})
}

func less(a, b team.Team) bool {
	if a.Record.Points != b.Record.Points {
		return a.Record.Points > b.Record.Points
	}
	if c := nocase.Compare(a.Name, b.Name); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}
