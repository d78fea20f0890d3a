package game

import (
	"time"

	"spyroom/internal/locations"
)

// Session is one round in a room. It exists only between a successful start
// and whichever terminal transition ends the round; the room owns it
// exclusively and guards it with the room lock.
type Session struct {
	Active      bool
	Ended       bool
	SpyID       string
	Location    locations.Location
	StartedAt   time.Time
	Duration    time.Duration
	Accusation  *Accusation
	FinalVoting *FinalVoting
}

// Accusation is a pending unanimous-vote challenge. At most one exists per
// session; the accuser's own approval is pre-recorded at creation.
type Accusation struct {
	AccuserID string
	AccusedID string
	Votes     map[string]bool // voter id -> approve
}

// FinalVoting is the end-of-clock vote, created only by clock expiry.
type FinalVoting struct {
	Active bool
	Votes  map[string]string // voter id -> suspect id
}
