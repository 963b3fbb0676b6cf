// Package nocase compares strings the way SQLite's NOCASE collation does:
// only ASCII letters fold, every other byte compares as is. The in-memory
// store and in-process sorting use it so both stores agree on order and
// equality.
package nocase

import "strings"

// Fold lowercases ASCII letters and leaves everything else untouched.
func Fold(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return strings.Map(foldRune, s)
		}
	}
	return s
}

func foldRune(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Compare returns -1, 0 or +1 like strings.Compare on the folded strings.
func Compare(a, b string) int {
	return strings.Compare(Fold(a), Fold(b))
}

func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
