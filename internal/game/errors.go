package game

import (
	"errors"

	"spyroom/internal/players"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrPlayerNotFound      = errors.New("player not in room")
	ErrLocationNotFound    = errors.New("unknown location")
	ErrAlreadyInRoom       = errors.New("already in this room")
	ErrNotHost             = errors.New("only the host can do that")
	ErrNotSpy              = errors.New("only the spy can guess the location")
	ErrNotAccuser          = errors.New("only the accuser can cancel the accusation")
	ErrAccusedCannotVote   = errors.New("the accused cannot vote")
	ErrSpyCannotVote       = errors.New("the spy cannot vote on accusations")
	ErrInsufficientPlayers = errors.New("at least 3 players are required")
	ErrSelfTarget          = errors.New("you cannot target yourself")
	ErrGameInProgress      = errors.New("a game is already in progress")
	ErrNoActiveGame        = errors.New("no active game")
	ErrAccusationPending   = errors.New("an accusation is already in progress")
	ErrNoAccusation        = errors.New("no accusation in progress")
	ErrVotingActive        = errors.New("final voting is in progress")
	ErrVotingNotActive     = errors.New("final voting is not active")
)

// Wire error codes.
const (
	CodeNotFound            = "not-found"
	CodePermissionDenied    = "permission-denied"
	CodeInsufficientPlayers = "insufficient-players"
	CodeInvalidInput        = "invalid-input"
	CodeConflict            = "conflict"
	CodeInternal            = "internal"
)

// Code maps an error to its wire taxonomy code.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrPlayerNotFound),
		errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrNoActiveGame):
		return CodeNotFound
	case errors.Is(err, ErrNotHost),
		errors.Is(err, ErrNotSpy),
		errors.Is(err, ErrNotAccuser),
		errors.Is(err, ErrAccusedCannotVote),
		errors.Is(err, ErrSpyCannotVote):
		return CodePermissionDenied
	case errors.Is(err, ErrInsufficientPlayers):
		return CodeInsufficientPlayers
	case errors.Is(err, ErrSelfTarget),
		errors.Is(err, players.ErrNameLength):
		return CodeInvalidInput
	case errors.Is(err, ErrAlreadyInRoom),
		errors.Is(err, ErrGameInProgress),
		errors.Is(err, ErrAccusationPending),
		errors.Is(err, ErrNoAccusation),
		errors.Is(err, ErrVotingActive),
		errors.Is(err, ErrVotingNotActive):
		return CodeConflict
	default:
		return CodeInternal
	}
}
