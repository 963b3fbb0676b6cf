package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Secret123" || !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash format: %q", hash)
	}

	ok, err := hasher.Matches(hash, "Secret123")
	if err != nil || !ok {
		t.Fatalf("expected password to match, ok=%v err=%v", ok, err)
	}

	ok, err = hasher.Matches(hash, "Secret124")
	if err != nil {
		t.Fatalf("wrong password must not be an error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}

	if _, err := hasher.Matches("not-a-hash", "Secret123"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	if got := NewBcryptHasher(99).cost; got != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", got)
	}
}
