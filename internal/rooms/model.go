package rooms

import (
	"time"

	"spyroom/internal/game"
)

type Room struct {
	Code      string
	Game      *game.Game
	CreatedAt time.Time
	HostID    string
}
