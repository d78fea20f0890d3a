package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spyroom/internal/events"
	"spyroom/internal/game"
	"spyroom/internal/rooms"
	"spyroom/internal/wshub"
)

func newTestServer() (*Server, *events.Bus) {
	bus := events.NewBus()
	cfg := game.Config{RoundDuration: time.Hour, MinPlayers: game.MinPlayers}
	return &Server{
		Rooms:   rooms.NewStore(cfg, bus, game.NewScheduler()),
		Hub:     wshub.NewHub(),
		Bus:     bus,
		Origins: []string{"*"},
	}, bus
}

func drain(bus *events.Bus) []events.Event {
	var out []events.Event
	for {
		select {
		case ev := <-bus.Events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func lastError(t *testing.T, bus *events.Bus) events.ErrorPayload {
	t.Helper()
	var payload events.ErrorPayload
	found := false
	for _, ev := range drain(bus) {
		if ev.Name == events.Error {
			payload = ev.Payload.(events.ErrorPayload)
			found = true
		}
	}
	require.True(t, found, "expected an error event")
	return payload
}

func roomCode(t *testing.T, s *Server) string {
	t.Helper()
	list := s.Rooms.List()
	require.NotEmpty(t, list)
	return list[len(list)-1].Code
}

func TestHandleMessage_CreateAndJoin(t *testing.T) {
	s, bus := newTestServer()

	s.handleMessage("conn-1", &ClientMessage{Type: "create-room"})
	code := roomCode(t, s)

	s.handleMessage("conn-1", &ClientMessage{Type: "join-room", RoomCode: code, UserName: "Alice"})

	room := s.Rooms.Get(code)
	require.NotNil(t, room)
	assert.Equal(t, 1, room.Game.PlayerCount())

	evs := drain(bus)
	names := make([]string, len(evs))
	for i, ev := range evs {
		names[i] = ev.Name
	}
	assert.Contains(t, names, events.RoomCreated)
	assert.Contains(t, names, events.JoinedRoom)
	assert.Contains(t, names, events.UserJoined)
	assert.NotContains(t, names, events.Error)
}

func TestHandleMessage_JoinUnknownRoom(t *testing.T) {
	s, bus := newTestServer()

	s.handleMessage("conn-1", &ClientMessage{Type: "join-room", RoomCode: "ZZZZ", UserName: "Alice"})

	p := lastError(t, bus)
	assert.Equal(t, game.CodeNotFound, p.Code)
}

func TestHandleMessage_StartByNonHost(t *testing.T) {
	s, bus := newTestServer()
	s.handleMessage("host", &ClientMessage{Type: "create-room"})
	code := roomCode(t, s)
	for _, c := range []string{"host", "p2", "p3"} {
		s.handleMessage(c, &ClientMessage{Type: "join-room", RoomCode: code, UserName: "Player " + c})
	}
	drain(bus)

	s.handleMessage("p2", &ClientMessage{Type: "start-game", RoomCode: code})
	p := lastError(t, bus)
	assert.Equal(t, game.CodePermissionDenied, p.Code)

	s.handleMessage("host", &ClientMessage{Type: "start-game", RoomCode: code})
	assert.NotContains(t, eventNames(drain(bus)), events.Error)
}

func TestHandleMessage_StartWithTwoPlayers(t *testing.T) {
	s, bus := newTestServer()
	s.handleMessage("host", &ClientMessage{Type: "create-room"})
	code := roomCode(t, s)
	s.handleMessage("host", &ClientMessage{Type: "join-room", RoomCode: code, UserName: "Alice"})
	s.handleMessage("p2", &ClientMessage{Type: "join-room", RoomCode: code, UserName: "Bob"})
	drain(bus)

	s.handleMessage("host", &ClientMessage{Type: "start-game", RoomCode: code})
	p := lastError(t, bus)
	assert.Equal(t, game.CodeInsufficientPlayers, p.Code)
}

func TestHandleMessage_UnknownType(t *testing.T) {
	s, bus := newTestServer()
	s.handleMessage("conn-1", &ClientMessage{Type: "flip-table"})
	p := lastError(t, bus)
	assert.Contains(t, p.Message, "flip-table")
}

func TestHandleMessage_GameOpsRequireRoom(t *testing.T) {
	s, bus := newTestServer()
	for _, typ := range []string{
		"start-game", "end-game", "spy-guess",
		"start-accusation", "vote-accusation", "cancel-accusation", "final-vote",
	} {
		s.handleMessage("conn-1", &ClientMessage{Type: typ, RoomCode: "ZZZZ"})
		p := lastError(t, bus)
		assert.Equal(t, game.CodeNotFound, p.Code, "type %s", typ)
	}
}

func eventNames(evs []events.Event) []string {
	names := make([]string, len(evs))
	for i, ev := range evs {
		names[i] = ev.Name
	}
	return names
}

func TestHandleRooms(t *testing.T) {
	s, bus := newTestServer()
	s.handleMessage("host", &ClientMessage{Type: "create-room"})
	code := roomCode(t, s)
	s.handleMessage("host", &ClientMessage{Type: "join-room", RoomCode: code, UserName: "Alice"})
	drain(bus)

	rec := httptest.NewRecorder()
	s.handleRooms(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []events.RoomSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, code, list[0].Code)
	assert.Equal(t, 1, list[0].PlayerCount)
}

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer()
	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
