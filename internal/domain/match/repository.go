package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	GetSummary(ctx context.Context, matchID int64) (Summary, bool, error)
	// ListUpcomingByTeam returns the soonest upcoming matches first.
	ListUpcomingByTeam(ctx context.Context, teamID int64, limit int) ([]Summary, error)
	// ListFinishedByTeam returns the most recent finished matches first.
	ListFinishedByTeam(ctx context.Context, teamID int64, limit int) ([]Summary, error)
}
