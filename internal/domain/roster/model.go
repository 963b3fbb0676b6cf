package roster

import (
	"errors"

	"github.com/riskibarqy/football-league/internal/domain/player"
)

// ErrAlreadyOnTeam is returned when a transition requires a free agent but the
// player was already a member when the write was applied.
var ErrAlreadyOnTeam = errors.New("player already belongs to a team")

// State is a player's team membership.
type State int

const (
	FreeAgent State = iota
	Member
)

func (s State) String() string {
	switch s {
	case FreeAgent:
		return "free_agent"
	case Member:
		return "member"
	default:
		return "unknown"
	}
}

func StateOf(p player.Player) State {
	if p.IsFreeAgent() {
		return FreeAgent
	}
	return Member
}
