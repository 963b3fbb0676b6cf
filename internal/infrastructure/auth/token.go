package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/riskibarqy/football-league/internal/domain/session"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of an issued token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 tokens with a shared secret.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *JWTIssuer) Issue(_ context.Context, principal session.Principal) (session.Session, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)

	claims := Claims{
		UserID: principal.PlayerID,
		Email:  principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return session.Session{}, fmt.Errorf("sign token: %w", err)
	}

	return session.Session{
		Principal: principal,
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func (i *JWTIssuer) Verify(_ context.Context, raw string) (session.Principal, error) {
	if raw == "" {
		return session.Principal{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	var claims Claims
	// Expiry is checked below against the issuer clock.
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return session.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyExpiresAt(i.now(), true) {
		return session.Principal{}, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	if !token.Valid || claims.UserID <= 0 {
		return session.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return session.Principal{PlayerID: claims.UserID, Email: claims.Email}, nil
}
