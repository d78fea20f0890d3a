package server

import (
	"encoding/json"
	"log"
	"net/http"

	"spyroom/internal/events"
	"spyroom/internal/rooms"
	"spyroom/internal/wshub"
)

type Server struct {
	Rooms   *rooms.Store
	Hub     *wshub.Hub
	Bus     *events.Bus
	Origins []string
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Rooms.List()); err != nil {
		log.Println(err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]any{
		"status":      "ok",
		"rooms":       len(s.Rooms.List()),
		"connections": s.Hub.ClientCount(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println(err)
	}
}
