package goal

import "context"

// Repository describes goal persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	CountByPlayer(ctx context.Context, playerID int64) (int, error)
	Create(ctx context.Context, g Goal) (Goal, error)
}
