package sovereign

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidSovereignty = errors.New("invalid sovereignty")

// Sovereignty is a political entity founded by exactly one claimant. Its
// territorial value is never stored here; it is derived from the grid.
type Sovereignty struct {
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Flag      string    `json:"flag"`
	Motto     string    `json:"motto,omitempty"`
	FoundedAt time.Time `json:"founded_at"`
}

func (s Sovereignty) Validate() error {
	if strings.TrimSpace(s.OwnerID) == "" || strings.TrimSpace(s.Name) == "" {
		return ErrInvalidSovereignty
	}
	return nil
}

// Update is a partial mutation; empty fields keep their current value.
type Update struct {
	Name  string `json:"name,omitempty"`
	Flag  string `json:"flag,omitempty"`
	Motto string `json:"motto,omitempty"`
}

func (s Sovereignty) Apply(u Update) Sovereignty {
	next := s
	if strings.TrimSpace(u.Name) != "" {
		next.Name = strings.TrimSpace(u.Name)
	}
	if strings.TrimSpace(u.Flag) != "" {
		next.Flag = strings.TrimSpace(u.Flag)
	}
	if strings.TrimSpace(u.Motto) != "" {
		next.Motto = strings.TrimSpace(u.Motto)
	}
	return next
}

// Standing is one row of the derived wealth ranking.
type Standing struct {
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	Flag       string `json:"flag"`
	TotalValue int    `json:"total_value"`
	TileCount  int    `json:"tile_count"`
}
