package goal

import (
	"fmt"
	"sort"
)

// MaxMinute leaves room for stoppage and extra time.
const MaxMinute = 130

// Goal records one goal scored in a match.
type Goal struct {
	ID       int64
	MatchID  int64
	TeamID   int64
	PlayerID int64
	Minute   int
}

func (g Goal) Validate() error {
	if g.MatchID == 0 {
		return fmt.Errorf("goal match id is required")
	}
	if g.TeamID == 0 {
		return fmt.Errorf("goal team id is required")
	}
	if g.PlayerID == 0 {
		return fmt.Errorf("goal player id is required")
	}
	if g.Minute < 0 || g.Minute > MaxMinute {
		return fmt.Errorf("goal minute must be between 0 and %d", MaxMinute)
	}

	return nil
}

// Entry is a goal annotated with scorer and team names.
type Entry struct {
	Goal
	PlayerName string
	TeamName   string
}

// SortEntries orders goals by minute, then by id.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Minute != entries[j].Minute {
			return entries[i].Minute < entries[j].Minute
		}
		return entries[i].ID < entries[j].ID
	})
}
