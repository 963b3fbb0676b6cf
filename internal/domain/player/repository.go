package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByEmail(ctx context.Context, email string) (Player, bool, error)
	// EmailTakenByOther reports whether email belongs to a player other than playerID.
	EmailTakenByOther(ctx context.Context, email string, playerID int64) (bool, error)
	UpdateCredentials(ctx context.Context, playerID int64, update CredentialsUpdate) (Player, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, playerID int64) (Profile, bool, error)
	GetProfileByEmail(ctx context.Context, email string) (Profile, bool, error)
}
