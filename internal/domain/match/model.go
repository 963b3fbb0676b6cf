package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming = "upcoming"
	StatusFinished = "finished"
)

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

// Match is one fixture between two teams of the same league. Scores are set
// exactly when the match is finished.
type Match struct {
	ID         int64
	LeagueID   string
	HomeTeamID int64
	AwayTeamID int64
	Status     string
	MatchDate  time.Time
	HomeScore  *int
	AwayScore  *int
}

func (m Match) IsFinished() bool {
	return NormalizeStatus(m.Status) == StatusFinished
}

func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

func (m Match) Validate() error {
	if m.LeagueID == "" {
		return fmt.Errorf("match league id is required")
	}
	if m.HomeTeamID == 0 || m.AwayTeamID == 0 {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away team must differ")
	}

	switch NormalizeStatus(m.Status) {
	case StatusUpcoming:
		if m.HomeScore != nil || m.AwayScore != nil {
			return fmt.Errorf("upcoming match cannot have a score")
		}
	case StatusFinished:
		if m.HomeScore == nil || m.AwayScore == nil {
			return fmt.Errorf("finished match requires both scores")
		}
		if *m.HomeScore < 0 || *m.AwayScore < 0 {
			return fmt.Errorf("match score cannot be negative")
		}
	default:
		return fmt.Errorf("unsupported match status %q", m.Status)
	}

	return nil
}

// Summary is a match joined with team and league names.
type Summary struct {
	Match
	HomeName      string
	AwayName      string
	LeagueName    string
	LeagueCountry string
}
