package events

import (
	"time"

	"spyroom/internal/locations"
	"spyroom/internal/players"
)

// Event names on the wire.
const (
	RoomCreated          = "room-created"
	JoinedRoom           = "joined-room"
	UserJoined           = "user-joined"
	UserLeft             = "user-left"
	RoomsUpdated         = "rooms-updated"
	GameStarted          = "game-started"
	VotingStarted        = "voting-started"
	GameEnded            = "game-ended"
	AccusationStarted    = "accusation-started"
	AccusationVoteUpdate = "accusation-vote-update"
	AccusationFailed     = "accusation-failed"
	AccusationCancelled  = "accusation-cancelled"
	FinalVoteUpdate      = "final-vote-update"
	Error                = "error"
)

// Reasons carried by game-ended payloads.
const (
	ReasonHost       = "host"
	ReasonSpyGuess   = "spy-guess"
	ReasonAccusation = "accusation"
	ReasonFinalVote  = "final-vote"
)

// Event is one outbound notification. Recipients lists the player identities
// it is addressed to; nil means every connected client. Recipient views are
// computed here, at emission, never by redacting a shared payload downstream.
type Event struct {
	Recipients []string `json:"-"`
	Name       string   `json:"event"`
	Payload    any      `json:"payload,omitempty"`
}

// Bus carries outbound events from the room and game layers to the
// transport. Buffered so emitting under a room lock never blocks.
type Bus struct {
	Events chan Event
}

func NewBus() *Bus {
	return &Bus{
		Events: make(chan Event, 64),
	}
}

// Emit queues an event for the given recipients.
func (b *Bus) Emit(recipients []string, name string, payload any) {
	b.Events <- Event{Recipients: recipients, Name: name, Payload: payload}
}

// EmitAll queues an event for every connected client.
func (b *Bus) EmitAll(name string, payload any) {
	b.Events <- Event{Name: name, Payload: payload}
}

// RoomSummary is one entry of a rooms-updated listing.
type RoomSummary struct {
	Code        string    `json:"code"`
	PlayerCount int       `json:"playerCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RoomCreatedPayload answers a create-room request.
type RoomCreatedPayload struct {
	RoomCode string `json:"roomCode"`
	HostID   string `json:"hostId"`
}

// RosterPayload is the common shape for joined-room, user-joined and
// user-left: the full ordered roster plus cumulative scores.
type RosterPayload struct {
	RoomCode string            `json:"roomCode"`
	UserID   string            `json:"userId,omitempty"`
	Players  []*players.Player `json:"players"`
	HostID   string            `json:"hostId"`
	Scores   map[string]int    `json:"scores"`
}

// GameStartedPayload is built once per recipient. The spy's copy has IsSpy
// set and no location key at all.
type GameStartedPayload struct {
	RoomCode  string              `json:"roomCode"`
	IsSpy     bool                `json:"isSpy"`
	Location  *locations.Location `json:"location,omitempty"`
	StartedAt time.Time           `json:"startedAt"`
	Duration  int                 `json:"duration"` // seconds
}

// VotingStartedPayload announces the end-of-clock final vote.
type VotingStartedPayload struct {
	RoomCode string `json:"roomCode"`
}

// GameEndedPayload reports an outcome. The optional fields depend on Reason:
// spy-guess fills Correct and Guessed, accusation fills AccuserID/AccusedID/
// AccusedWasSpy, final-vote fills Correctness.
type GameEndedPayload struct {
	RoomCode      string              `json:"roomCode"`
	Reason        string              `json:"reason"`
	SpyID         string              `json:"spyId"`
	SpyName       string              `json:"spyName"`
	Location      locations.Location  `json:"location"`
	Scores        map[string]int      `json:"scores"`
	Correct       *bool               `json:"correct,omitempty"`
	Guessed       *locations.Location `json:"guessedLocation,omitempty"`
	AccuserID     string              `json:"accuserId,omitempty"`
	AccusedID     string              `json:"accusedId,omitempty"`
	AccusedWasSpy *bool               `json:"accusedWasSpy,omitempty"`
	Correctness   map[string]bool     `json:"correctness,omitempty"`
}

// AccusationPayload covers accusation-started, accusation-vote-update,
// accusation-failed and accusation-cancelled.
type AccusationPayload struct {
	RoomCode  string          `json:"roomCode"`
	AccuserID string          `json:"accuserId"`
	AccusedID string          `json:"accusedId"`
	Votes     map[string]bool `json:"votes,omitempty"`
	Quorum    int             `json:"quorum,omitempty"`
}

// FinalVotePayload reports final-vote progress. Individual choices stay
// hidden until the outcome's correctness map.
type FinalVotePayload struct {
	RoomCode string `json:"roomCode"`
	Voted    int    `json:"voted"`
	Total    int    `json:"total"`
}

// ErrorPayload is sent only to the requester that caused the failure.
type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
