package session

import (
	"context"
	"time"
)

// Principal is the identity carried by a token.
type Principal struct {
	PlayerID int64
	Email    string
}

// Session is an issued identity assertion.
type Session struct {
	Principal
	Token     string
	ExpiresAt time.Time
}

// Issuer signs and verifies identity assertions.
type Issuer interface {
	Issue(ctx context.Context, principal Principal) (Session, error)
	Verify(ctx context.Context, token string) (Principal, error)
}
