package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/session"
)

func newTestAuthService(t *testing.T) (*AuthService, fixtureRepos) {
	t.Helper()

	repos := newFixtureRepos(t)
	now := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	service := NewAuthService(repos.players, plainHasher{}, stubIssuer{now: now}, discardLogger())
	service.now = func() time.Time { return now }
	return service, repos
}

func strPtr(v string) *string {
	return &v
}

func TestAuthService_Register_Success(t *testing.T) {
	t.Parallel()

	service, repos := newTestAuthService(t)

	sess, err := service.Register(t.Context(), CredentialsInput{Email: "  nora.new@league.example ", Password: "Secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if sess.Email != "nora.new@league.example" {
		t.Fatalf("unexpected session email: %q", sess.Email)
	}
	if sess.Token == "" {
		t.Fatalf("expected token")
	}

	created, exists, err := repos.players.GetByID(t.Context(), sess.PlayerID)
	if err != nil || !exists {
		t.Fatalf("get created player: exists=%v err=%v", exists, err)
	}
	if created.Name != "Nora New" {
		t.Fatalf("unexpected display name: %q", created.Name)
	}
	if created.PasswordHash != "hashed:Secret123" {
		t.Fatalf("expected hashed password, got %q", created.PasswordHash)
	}
	if !created.IsFreeAgent() {
		t.Fatalf("expected new player to be a free agent")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{name: "missing email", email: " ", password: "Secret123", message: MsgCredentialsRequired},
		{name: "missing password", email: "a@b.co", password: "", message: MsgCredentialsRequired},
		{name: "bad email format", email: "not-an-email", password: "Secret123", message: "Érvénytelen email cím formátum"},
		{name: "short password", email: "a@b.co", password: "Ab1", message: "A jelszónak legalább 8 karakter hosszúnak kell lennie"},
		{name: "no uppercase", email: "a@b.co", password: "abc12345", message: "A jelszónak tartalmaznia kell legalább egy nagybetűt"},
		{name: "no lowercase", email: "a@b.co", password: "ABC12345", message: "A jelszónak tartalmaznia kell legalább egy kisbetűt"},
		{name: "no digit", email: "a@b.co", password: "Abcdefgh", message: "A jelszónak tartalmaznia kell legalább egy számot"},
		{name: "password over hash limit", email: "a@b.co", password: "Aa1" + strings.Repeat("x", 77), message: "A jelszó legfeljebb 72 bájt hosszú lehet"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, _ := newTestAuthService(t)
			_, err := service.Register(t.Context(), CredentialsInput{Email: tc.email, Password: tc.password})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if got := Message(err); got != tc.message {
				t.Fatalf("unexpected message: got=%q want=%q", got, tc.message)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService(t)

	_, err := service.Register(t.Context(), CredentialsInput{Email: "FRED@free.example", Password: "Secret123"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if got := Message(err); got != MsgEmailRegistered {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService(t)
	if _, err := service.Register(t.Context(), CredentialsInput{Email: "lara@league.example", Password: "Secret123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := service.Authenticate(t.Context(), CredentialsInput{Email: "lara@league.example", Password: "Secret123"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.Email != "lara@league.example" || sess.Token == "" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	failures := []CredentialsInput{
		{Email: "lara@league.example", Password: "Wrong1234"},
		{Email: "nobody@league.example", Password: "Secret123"},
		// Seeded players have no password.
		{Email: "fred@free.example", Password: "Secret123"},
	}
	for _, input := range failures {
		_, err := service.Authenticate(t.Context(), input)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %s, got %v", input.Email, err)
		}
		if got := Message(err); got != MsgInvalidCredentials {
			t.Fatalf("unexpected message for %s: %q", input.Email, got)
		}
	}

	_, err = service.Authenticate(t.Context(), CredentialsInput{Email: "lara@league.example"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing password, got %v", err)
	}
}

func TestAuthService_UpdateCredentials(t *testing.T) {
	t.Parallel()

	t.Run("nothing to update", func(t *testing.T) {
		t.Parallel()

		service, _ := newTestAuthService(t)
		_, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{PlayerID: freeFredID, Email: strPtr("  ")})
		if !errors.Is(err, ErrInvalidInput) || Message(err) != MsgNothingToUpdate {
			t.Fatalf("expected nothing-to-update error, got %v (%q)", err, Message(err))
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		t.Parallel()

		service, _ := newTestAuthService(t)
		_, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{PlayerID: 999, Email: strPtr("x@y.example")})
		if !errors.Is(err, ErrNotFound) || Message(err) != MsgPlayerNotFound {
			t.Fatalf("expected not found error, got %v (%q)", err, Message(err))
		}
	})

	t.Run("email belongs to another player", func(t *testing.T) {
		t.Parallel()

		service, _ := newTestAuthService(t)
		_, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{PlayerID: freeFredID, Email: strPtr("finn@free.example")})
		if !errors.Is(err, ErrDuplicateEmail) || Message(err) != MsgEmailTaken {
			t.Fatalf("expected duplicate email error, got %v (%q)", err, Message(err))
		}
	})

	t.Run("invalid password is rejected before lookup", func(t *testing.T) {
		t.Parallel()

		service, _ := newTestAuthService(t)
		_, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{PlayerID: 999, Password: strPtr("short")})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("password over hash limit", func(t *testing.T) {
		t.Parallel()

		service, _ := newTestAuthService(t)
		_, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{PlayerID: freeFredID, Password: strPtr("Aa1" + strings.Repeat("é", 40))})
		if !errors.Is(err, ErrInvalidInput) || Message(err) != "A jelszó legfeljebb 72 bájt hosszú lehet" {
			t.Fatalf("expected too-long password error, got %v (%q)", err, Message(err))
		}
	})

	t.Run("keeping own email and changing password", func(t *testing.T) {
		t.Parallel()

		service, repos := newTestAuthService(t)
		updated, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{
			PlayerID: freeFredID,
			Email:    strPtr("fred@free.example"),
			Password: strPtr("NewSecret9"),
		})
		if err != nil {
			t.Fatalf("update credentials: %v", err)
		}
		if updated.Email != "fred@free.example" {
			t.Fatalf("unexpected email: %q", updated.Email)
		}

		stored, _, _ := repos.players.GetByID(t.Context(), freeFredID)
		if stored.PasswordHash != "hashed:NewSecret9" {
			t.Fatalf("expected password to be re-hashed, got %q", stored.PasswordHash)
		}

		if _, err := service.Authenticate(t.Context(), CredentialsInput{Email: "fred@free.example", Password: "NewSecret9"}); err != nil {
			t.Fatalf("authenticate with new password: %v", err)
		}
	})

	t.Run("email only leaves password unchanged", func(t *testing.T) {
		t.Parallel()

		service, repos := newTestAuthService(t)
		sess, err := service.Register(t.Context(), CredentialsInput{Email: "ivy@league.example", Password: "Secret123"})
		if err != nil {
			t.Fatalf("register: %v", err)
		}

		if _, err := service.UpdateCredentials(t.Context(), UpdateCredentialsInput{
			PlayerID: sess.PlayerID,
			Email:    strPtr("ivy.new@league.example"),
		}); err != nil {
			t.Fatalf("update credentials: %v", err)
		}

		stored, _, _ := repos.players.GetByID(t.Context(), sess.PlayerID)
		if stored.Email != "ivy.new@league.example" || stored.PasswordHash != "hashed:Secret123" {
			t.Fatalf("unexpected stored player: %+v", stored)
		}
	})
}

func TestAuthService_Verify(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService(t)

	if _, err := service.Verify(t.Context(), "  "); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
	if _, err := service.Verify(t.Context(), "garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for malformed token, got %v", err)
	}

	principal, err := service.Verify(t.Context(), "token:3:fred@free.example")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	profile, err := service.CurrentPlayer(t.Context(), principal)
	if err != nil {
		t.Fatalf("current player: %v", err)
	}
	if profile.ID != freeFredID || !strings.EqualFold(profile.Email, "fred@free.example") {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	_, err = service.CurrentPlayer(t.Context(), session.Principal{PlayerID: 999})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for deleted player, got %v", err)
	}
}
