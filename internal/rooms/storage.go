package rooms

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"spyroom/internal/events"
	"spyroom/internal/game"
)

// Store is the room registry. A room lives here from creation until its last
// player leaves; listing preserves creation order.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	order []string

	cfg   game.Config
	bus   *events.Bus
	sched game.Scheduler
}

func NewStore(cfg game.Config, bus *events.Bus, sched game.Scheduler) *Store {
	return &Store{
		rooms: make(map[string]*Room),
		cfg:   cfg,
		bus:   bus,
		sched: sched,
	}
}

// Create registers a new empty room owned by hostID, retrying code
// generation until it does not collide with a live room.
func (s *Store) Create(hostID string) (*Room, error) {
	s.mu.Lock()

	var room *Room
	for i := 0; i < 10; i++ {
		code, err := GenerateCode()
		if err != nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room = &Room{
			Code:      code,
			Game:      game.New(code, hostID, s.cfg, s.bus, s.sched),
			CreatedAt: time.Now(),
			HostID:    hostID,
		}
		s.rooms[code] = room
		s.order = append(s.order, code)
		break
	}
	s.mu.Unlock()

	if room == nil {
		return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
	}

	log.Printf("[Room] created %s (host %s)\n", room.Code, hostID)
	s.bus.Emit([]string{hostID}, events.RoomCreated, events.RoomCreatedPayload{
		RoomCode: room.Code,
		HostID:   hostID,
	})
	s.broadcastRoomsUpdated()
	return room, nil
}

// Get resolves a room by code, case-insensitively. Nil when absent.
func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[strings.ToUpper(code)]
}

// Join adds a player to the room identified by code.
func (s *Store) Join(code, playerID, name string) error {
	room := s.Get(code)
	if room == nil {
		return game.ErrRoomNotFound
	}
	if err := room.Game.AddPlayer(playerID, name); err != nil {
		return err
	}
	s.broadcastRoomsUpdated()
	return nil
}

// Leave removes the player from every room they belong to; membership is not
// tracked per connection, so the disconnect sweep checks all of them. Rooms
// left empty are destroyed, which also cancels their round clock.
func (s *Store) Leave(playerID string) {
	s.mu.Lock()
	codes := append([]string(nil), s.order...)
	s.mu.Unlock()

	changed := false
	for _, code := range codes {
		room := s.Get(code)
		if room == nil {
			continue
		}
		removed, empty := room.Game.RemovePlayer(playerID)
		if !removed {
			continue
		}
		changed = true
		if empty {
			s.remove(code)
			log.Printf("[Room] destroyed %s (empty)\n", code)
		}
	}

	if changed {
		s.broadcastRoomsUpdated()
	}
}

// Destroy drops a room outright, cancelling any pending clock. Not reachable
// from client requests; Leave is the usual path.
func (s *Store) Destroy(code string) {
	room := s.Get(code)
	if room == nil {
		return
	}
	room.Game.Stop()
	s.remove(room.Code)
	s.broadcastRoomsUpdated()
}

// List summarizes every live room in creation order.
func (s *Store) List() []events.RoomSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summariesLocked()
}

func (s *Store) remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	for i, c := range s.order {
		if c == code {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) broadcastRoomsUpdated() {
	s.mu.Lock()
	summaries := s.summariesLocked()
	s.mu.Unlock()
	s.bus.EmitAll(events.RoomsUpdated, summaries)
}

func (s *Store) summariesLocked() []events.RoomSummary {
	list := make([]events.RoomSummary, 0, len(s.order))
	for _, code := range s.order {
		room := s.rooms[code]
		if room == nil {
			continue
		}
		list = append(list, events.RoomSummary{
			Code:        room.Code,
			PlayerCount: room.Game.PlayerCount(),
			CreatedAt:   room.CreatedAt,
		})
	}
	return list
}
