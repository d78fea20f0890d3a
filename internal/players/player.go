package players

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	MinNameLength = 2
	MaxNameLength = 20
)

var ErrNameLength = fmt.Errorf("name must be %d-%d characters", MinNameLength, MaxNameLength)

// Player is one member of a room. ID equals the owning connection's identity;
// reconnecting yields a fresh identity, never this one.
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	JoinedAt time.Time `json:"joinedAt"`
}

// New validates the display name and builds a player.
func New(id, name string) (*Player, error) {
	trimmed, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Player{
		ID:       id,
		Name:     trimmed,
		Color:    RandomColorHex(),
		JoinedAt: time.Now(),
	}, nil
}

// ValidateName trims the display name and checks its length.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < MinNameLength || len(trimmed) > MaxNameLength {
		return "", ErrNameLength
	}
	return trimmed, nil
}

// IsNameError reports whether err is a display-name validation failure.
func IsNameError(err error) bool {
	return errors.Is(err, ErrNameLength)
}

// RandomColorHex returns a #rrggbb color with each component kept away from
// pure black and pure white so names stay readable on any background.
func RandomColorHex() string {
	r := 4 + rand.Intn(248)
	g := 4 + rand.Intn(248)
	b := 4 + rand.Intn(248)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
