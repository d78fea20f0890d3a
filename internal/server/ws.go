package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"spyroom/internal/events"
	"spyroom/internal/game"
	"spyroom/internal/metrics"
	"spyroom/internal/wshub"
)

// ClientMessage is the JSON structure received from clients.
type ClientMessage struct {
	Type       string `json:"type"`
	RoomCode   string `json:"roomCode,omitempty"`
	UserName   string `json:"userName,omitempty"`
	LocationID int    `json:"locationId,omitempty"`
	AccusedID  string `json:"accusedId,omitempty"`
	TargetID   string `json:"targetId,omitempty"`
	Vote       bool   `json:"vote,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.Origins,
	})
	if err != nil {
		log.Printf("[WS] accept error: %v\n", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	// The connection id is the player identity for its whole lifetime.
	connID := uuid.New().String()
	client := &wshub.Client{
		PlayerID: connID,
		Conn:     conn,
		Send:     make(chan []byte, 32),
	}
	s.Hub.Register(client)
	metrics.ActiveConnections.Inc()
	log.Printf("[WS] connected: %s\n", connID)

	ctx := r.Context()
	go client.WritePump(ctx)

	defer func() {
		s.Hub.Unregister(connID)
		s.Rooms.Leave(connID)
		metrics.ActiveConnections.Dec()
		log.Printf("[WS] disconnected: %s\n", connID)
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(connID, fmt.Errorf("invalid message"))
			continue
		}
		s.handleMessage(connID, &msg)
	}
}

// handleMessage dispatches one inbound request. Failures never touch shared
// state and are reported only to the requester.
func (s *Server) handleMessage(connID string, msg *ClientMessage) {
	var err error
	switch msg.Type {
	case "create-room":
		_, err = s.Rooms.Create(connID)
	case "join-room":
		err = s.Rooms.Join(msg.RoomCode, connID, msg.UserName)
	case "start-game":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.Start(connID)
		})
	case "end-game":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.End(connID)
		})
	case "spy-guess":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.SpyGuess(connID, msg.LocationID)
		})
	case "start-accusation":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.StartAccusation(connID, msg.AccusedID)
		})
	case "vote-accusation":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.VoteAccusation(connID, msg.Vote)
		})
	case "cancel-accusation":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.CancelAccusation(connID)
		})
	case "final-vote":
		err = s.withRoom(msg.RoomCode, func(g *game.Game) error {
			return g.FinalVote(connID, msg.TargetID)
		})
	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}

	if err != nil {
		s.sendError(connID, err)
	}
}

func (s *Server) withRoom(code string, fn func(*game.Game) error) error {
	room := s.Rooms.Get(code)
	if room == nil {
		return game.ErrRoomNotFound
	}
	return fn(room.Game)
}

func (s *Server) sendError(connID string, err error) {
	s.Bus.Emit([]string{connID}, events.Error, events.ErrorPayload{
		Message: err.Error(),
		Code:    game.Code(err),
	})
}
