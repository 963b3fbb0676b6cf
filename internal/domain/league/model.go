package league

import (
	"fmt"
	"strings"
)

const DefaultSeason = "2024-25"

// League is a seeded competition identified by a stable slug.
type League struct {
	ID      string
	Name    string
	Country string
	Season  string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}
