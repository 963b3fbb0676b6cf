package player

import (
	"regexp"
	"strings"
	"unicode"
)

// Rule identifies one credential check. Checks run in the declared order and
// the first failing rule is reported.
type Rule string

const (
	RuleEmailRequired    Rule = "email_required"
	RuleEmailFormat      Rule = "email_format"
	RulePasswordRequired Rule = "password_required"
	RulePasswordLength   Rule = "password_length"
	RulePasswordUpper    Rule = "password_uppercase"
	RulePasswordLower    Rule = "password_lowercase"
	RulePasswordDigit    Rule = "password_digit"
	RulePasswordTooLong  Rule = "password_too_long"
)

const MinPasswordLength = 8

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

var ruleMessages = map[Rule]string{
	RuleEmailRequired:    "Az email cím megadása kötelező",
	RuleEmailFormat:      "Érvénytelen email cím formátum",
	RulePasswordRequired: "A jelszó megadása kötelező",
	RulePasswordLength:   "A jelszónak legalább 8 karakter hosszúnak kell lennie",
	RulePasswordUpper:    "A jelszónak tartalmaznia kell legalább egy nagybetűt",
	RulePasswordLower:    "A jelszónak tartalmaznia kell legalább egy kisbetűt",
	RulePasswordDigit:    "A jelszónak tartalmaznia kell legalább egy számot",
	RulePasswordTooLong:  "A jelszó legfeljebb 72 bájt hosszú lehet",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RuleViolation reports the first credential rule that failed.
type RuleViolation struct {
	Rule Rule
}

func (v *RuleViolation) Error() string {
	return v.Message()
}

// Message is the localized text shown to the user.
func (v *RuleViolation) Message() string {
	return ruleMessages[v.Rule]
}

func violation(rule Rule) error {
	return &RuleViolation{Rule: rule}
}

func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func ValidateEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return violation(RuleEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return violation(RuleEmailFormat)
	}
	return nil
}

// ValidatePassword checks length, then uppercase, then lowercase, then digit,
// then the bcrypt limit. The limit counts UTF-8 bytes, not characters.
func ValidatePassword(password string) error {
	if password == "" {
		return violation(RulePasswordRequired)
	}
	if len([]rune(password)) < MinPasswordLength {
		return violation(RulePasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return violation(RulePasswordUpper)
	case !hasLower:
		return violation(RulePasswordLower)
	case !hasDigit:
		return violation(RulePasswordDigit)
	case len(password) > MaxPasswordBytes:
		return violation(RulePasswordTooLong)
	}
	return nil
}

// ValidateCredentials is the single validation routine for signup and profile edits.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
