package roster

import (
	"context"

	"github.com/riskibarqy/football-league/internal/domain/team"
)

// Repository applies membership transitions as atomic check-then-write
// operations. Both methods fail with ErrAlreadyOnTeam when the player is not
// a free agent at write time.
type Repository interface {
	CreateTeamWithCaptain(ctx context.Context, t team.Team, captainID int64) (team.Team, error)
	AssignToTeam(ctx context.Context, playerID, teamID int64) error
}
