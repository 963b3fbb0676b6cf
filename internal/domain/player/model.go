package player

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// ErrEmailTaken is returned by repositories when the unique email index rejects a write.
var ErrEmailTaken = errors.New("email already registered")

// Player is both the login identity and the roster record.
// A nil TeamID means the player is a free agent.
type Player struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	TeamID       *int64
	CreatedAt    time.Time
}

func (p Player) IsFreeAgent() bool {
	return p.TeamID == nil
}

// HasPassword reports whether the player can log in; seeded players cannot.
func (p Player) HasPassword() bool {
	return p.PasswordHash != ""
}

// TeamRef is the short team description shown next to a player.
type TeamRef struct {
	ID         int64
	Name       string
	LeagueName string
}

// Profile is a player with team context and scoring total.
type Profile struct {
	ID    int64
	Name  string
	Email string
	Team  *TeamRef
	Goals int
}

// CredentialsUpdate carries the optional fields of a profile edit.
type CredentialsUpdate struct {
	Email        *string
	PasswordHash *string
}

func (u CredentialsUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil
}

// DisplayNameFromEmail derives a name from the local part of an address.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	if len(words) == 0 {
		return strings.TrimSpace(email)
	}
	return strings.Join(words, " ")
}
