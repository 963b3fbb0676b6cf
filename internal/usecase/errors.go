package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrNotCaptain         = errors.New("not the team captain")
	ErrAlreadyOnTeam      = errors.New("player already on a team")
	ErrStore              = errors.New("store failure")
)

// User-facing messages attached to errors as hints.
const (
	MsgCredentialsRequired  = "Az email cím és a jelszó megadása kötelező"
	MsgEmailRegistered      = "Ez az email cím már regisztrálva van"
	MsgEmailTaken           = "Ez az email cím már foglalt"
	MsgInvalidCredentials   = "Hibás email cím vagy jelszó"
	MsgNothingToUpdate      = "Nincs frissítendő adat"
	MsgMissingData          = "Hiányzó adatok"
	MsgPlayerIDMissing      = "Játékos azonosító hiányzik"
	MsgLeagueNotFound       = "A liga nem található"
	MsgPlayerNotFound       = "A játékos nem található"
	MsgTeamNotFound         = "A csapat nem található"
	MsgMatchNotFound        = "A mérkőzés nem található"
	MsgOnlyFreeAgentCreates = "Csak csapat nélküli játékos hozhat létre új csapatot"
	MsgAlreadyMember        = "Már tagsz egy csapatnak"
	MsgPlayerAlreadyMember  = "A játékos már tagja egy csapatnak"
	MsgOnlyCaptainRecruits  = "Csak a csapatkapitány adhat hozzá játékost"
	MsgInvalidScore         = "Érvénytelen eredmény"
	MsgInvalidGoal          = "Érvénytelen gól adat"
	MsgUnauthorized         = "Bejelentkezés szükséges"
	MsgInvalidRequest       = "Érvénytelen kérés"
	MsgStoreFailure         = "Adatbázis hiba történt"
	MsgServerError          = "Szerverhiba történt"
)

// withMessage attaches the localized message shown to the client.
func withMessage(err error, message string) error {
	return crerr.WithHint(err, message)
}

// storeError marks an unexpected repository failure so the transport layer
// can tell it apart from domain errors.
func storeError(op string, err error) error {
	return crerr.Mark(fmt.Errorf("%s: %w", op, err), ErrStore)
}

// Message returns the outermost localized message attached to err, or "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	hints := crerr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	// Hints are collected innermost first.
	return hints[len(hints)-1]
}
