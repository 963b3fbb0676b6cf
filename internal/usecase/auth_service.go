package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/session"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

// PasswordHasher hashes and checks player passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password produces hash. A mismatch is not an error.
	Matches(hash, password string) (bool, error)
}

type CredentialsInput struct {
	Email    string
	Password string
}

type UpdateCredentialsInput struct {
	PlayerID int64
	Email    *string
	Password *string
}

type AuthService struct {
	playerRepo player.Repository
	hasher     PasswordHasher
	issuer     session.Issuer
	logger     *logging.Logger
	now        func() time.Time
}

func NewAuthService(
	playerRepo player.Repository,
	hasher PasswordHasher,
	issuer session.Issuer,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		playerRepo: playerRepo,
		hasher:     hasher,
		issuer:     issuer,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates a free agent with a hashed password and opens a session for it.
func (s *AuthService) Register(ctx context.Context, input CredentialsInput) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	email := player.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return session.Session{}, withMessage(fmt.Errorf("%w: email and password are required", ErrInvalidInput), MsgCredentialsRequired)
	}
	if err := validateCredentials(email, input.Password); err != nil {
		return session.Session{}, err
	}

	_, exists, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		return session.Session{}, storeError("get player by email", err)
	}
	if exists {
		return session.Session{}, withMessage(fmt.Errorf("%w: %s", ErrDuplicateEmail, email), MsgEmailRegistered)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return session.Session{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.playerRepo.Create(ctx, player.Player{
		Name:         player.DisplayNameFromEmail(email),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		// Lost a race against another signup with the same address.
		if errors.Is(err, player.ErrEmailTaken) {
			return session.Session{}, withMessage(fmt.Errorf("%w: %s", ErrDuplicateEmail, email), MsgEmailRegistered)
		}
		return session.Session{}, storeError("create player", err)
	}

	sess, err := s.issuer.Issue(ctx, session.Principal{PlayerID: created.ID, Email: created.Email})
	if err != nil {
		return session.Session{}, fmt.Errorf("issue session: %w", err)
	}

	s.logger.InfoContext(ctx, "player registered", "player_id", created.ID)
	return sess, nil
}

// Authenticate checks an email/password pair. Unknown emails, players without
// a password and wrong passwords all fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, input CredentialsInput) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	email := player.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return session.Session{}, withMessage(fmt.Errorf("%w: email and password are required", ErrInvalidInput), MsgCredentialsRequired)
	}

	invalid := withMessage(ErrInvalidCredentials, MsgInvalidCredentials)

	p, exists, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		return session.Session{}, storeError("get player by email", err)
	}
	if !exists || !p.HasPassword() {
		return session.Session{}, invalid
	}

	ok, err := s.hasher.Matches(p.PasswordHash, input.Password)
	if err != nil {
		return session.Session{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		s.logger.InfoContext(ctx, "login rejected", "player_id", p.ID)
		return session.Session{}, invalid
	}

	sess, err := s.issuer.Issue(ctx, session.Principal{PlayerID: p.ID, Email: p.Email})
	if err != nil {
		return session.Session{}, fmt.Errorf("issue session: %w", err)
	}
	return sess, nil
}

// UpdateCredentials changes the email and/or password of a player. Fields
// left nil are not touched.
func (s *AuthService) UpdateCredentials(ctx context.Context, input UpdateCredentialsInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.UpdateCredentials")
	defer span.End()

	var update player.CredentialsUpdate
	if input.Email != nil {
		email := player.NormalizeEmail(*input.Email)
		if email != "" {
			update.Email = &email
		}
	}
	var password string
	if input.Password != nil && *input.Password != "" {
		password = *input.Password
	}
	if update.Email == nil && password == "" {
		return player.Player{}, withMessage(fmt.Errorf("%w: nothing to update", ErrInvalidInput), MsgNothingToUpdate)
	}

	if update.Email != nil {
		if err := player.ValidateEmail(*update.Email); err != nil {
			return player.Player{}, ruleError(err)
		}
	}
	if password != "" {
		if err := player.ValidatePassword(password); err != nil {
			return player.Player{}, ruleError(err)
		}
	}

	_, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, storeError("get player", err)
	}
	if !exists {
		return player.Player{}, withMessage(fmt.Errorf("%w: player id=%d", ErrNotFound, input.PlayerID), MsgPlayerNotFound)
	}

	if update.Email != nil {
		taken, err := s.playerRepo.EmailTakenByOther(ctx, *update.Email, input.PlayerID)
		if err != nil {
			return player.Player{}, storeError("check email owner", err)
		}
		if taken {
			return player.Player{}, withMessage(fmt.Errorf("%w: %s", ErrDuplicateEmail, *update.Email), MsgEmailTaken)
		}
	}

	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return player.Player{}, fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	updated, err := s.playerRepo.UpdateCredentials(ctx, input.PlayerID, update)
	if err != nil {
		if errors.Is(err, player.ErrEmailTaken) {
			return player.Player{}, withMessage(fmt.Errorf("%w: %s", ErrDuplicateEmail, *update.Email), MsgEmailTaken)
		}
		return player.Player{}, storeError("update credentials", err)
	}

	s.logger.InfoContext(ctx, "player credentials updated",
		"player_id", updated.ID,
		"email_changed", update.Email != nil,
		"password_changed", update.PasswordHash != nil,
	)
	return updated, nil
}

// Verify resolves a bearer token into the identity it was issued for.
func (s *AuthService) Verify(ctx context.Context, token string) (session.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return session.Principal{}, withMessage(fmt.Errorf("%w: missing token", ErrUnauthorized), MsgUnauthorized)
	}

	principal, err := s.issuer.Verify(ctx, token)
	if err != nil {
		return session.Principal{}, withMessage(fmt.Errorf("%w: %v", ErrUnauthorized, err), MsgUnauthorized)
	}
	return principal, nil
}

// CurrentPlayer loads the profile behind a verified principal.
func (s *AuthService) CurrentPlayer(ctx context.Context, principal session.Principal) (player.Profile, error) {
	profile, exists, err := s.playerRepo.GetProfile(ctx, principal.PlayerID)
	if err != nil {
		return player.Profile{}, storeError("get player profile", err)
	}
	if !exists {
		return player.Profile{}, withMessage(fmt.Errorf("%w: player id=%d no longer exists", ErrUnauthorized, principal.PlayerID), MsgUnauthorized)
	}
	return profile, nil
}

func validateCredentials(email, password string) error {
	if err := player.ValidateCredentials(email, password); err != nil {
		return ruleError(err)
	}
	return nil
}

func ruleError(err error) error {
	var violation *player.RuleViolation
	if errors.As(err, &violation) {
		return withMessage(fmt.Errorf("%w: %s", ErrInvalidInput, violation.Rule), violation.Message())
	}
	return withMessage(fmt.Errorf("%w: %v", ErrInvalidInput, err), MsgInvalidRequest)
}
