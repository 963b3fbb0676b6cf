package team

import (
	"fmt"
	"strings"
)

// Record holds the cumulative counters derived from finished matches.
type Record struct {
	Matches int
	Wins    int
	Draws   int
	Losses  int
	Points  int
}

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// Validate checks the arithmetic invariants between the counters.
func (r Record) Validate() error {
	if r.Matches != r.Wins+r.Draws+r.Losses {
		return fmt.Errorf("record matches %d != wins+draws+losses %d", r.Matches, r.Wins+r.Draws+r.Losses)
	}
	if r.Points != r.Wins*PointsForWin+r.Draws*PointsForDraw {
		return fmt.Errorf("record points %d != wins*3+draws %d", r.Points, r.Wins*PointsForWin+r.Draws*PointsForDraw)
	}

	return nil
}

// Team is a club inside one league. CaptainPlayerID is nil for seeded clubs.
type Team struct {
	ID              int64
	LeagueID        string
	Name            string
	CaptainPlayerID *int64
	Record          Record
}

func (t Team) Validate() error {
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if NormalizeName(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

func (t Team) IsCaptain(playerID int64) bool {
	return t.CaptainPlayerID != nil && *t.CaptainPlayerID == playerID
}

func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Summary is a team joined with its league and captain for listings.
type Summary struct {
	Team
	LeagueName    string
	LeagueCountry string
	CaptainName   string
}
