package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spyroom/internal/config"
	"spyroom/internal/events"
	"spyroom/internal/game"
	"spyroom/internal/metrics"
	"spyroom/internal/rooms"
	"spyroom/internal/wshub"
)

func Run() error {
	appCfg := config.Load()

	gameCfg := game.Config{
		RoundDuration: time.Duration(appCfg.RoundDuration) * time.Second,
		MinPlayers:    game.MinPlayers,
	}

	bus := events.NewBus()
	srv := &Server{
		Rooms:   rooms.NewStore(gameCfg, bus, game.NewScheduler()),
		Hub:     wshub.NewHub(),
		Bus:     bus,
		Origins: strings.Split(appCfg.WSOrigins, ","),
	}
	go srv.dispatch()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/api/rooms", srv.handleRooms)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	addr := "0.0.0.0:" + appCfg.Port
	log.Printf("Server listening on http://localhost:%s\n", appCfg.Port)
	return http.ListenAndServe(addr, mux)
}

// dispatch drains the event bus: every event feeds the metrics observer and
// then goes to the hub for delivery.
func (s *Server) dispatch() {
	for ev := range s.Bus.Events {
		s.observe(ev)
		s.Hub.Dispatch(ev)
	}
}

// observe updates Prometheus metrics from the outbound event stream.
func (s *Server) observe(ev events.Event) {
	switch ev.Name {
	case events.RoomsUpdated:
		if list, ok := ev.Payload.([]events.RoomSummary); ok {
			metrics.ActiveRooms.Set(float64(len(list)))
		}
	case events.GameStarted:
		// One start emits a payload per player; the spy's copy is unique.
		if p, ok := ev.Payload.(events.GameStartedPayload); ok && p.IsSpy {
			metrics.SessionsStarted.Inc()
		}
	case events.GameEnded:
		if p, ok := ev.Payload.(events.GameEndedPayload); ok {
			metrics.SessionsEnded.WithLabelValues(p.Reason).Inc()
		}
	case events.Error:
		metrics.ClientErrors.Inc()
	}
}
