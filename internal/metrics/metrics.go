package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spyroom_connections_active",
		Help: "Number of live WebSocket connections.",
	})

	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spyroom_rooms_active",
		Help: "Number of live rooms.",
	})

	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spyroom_sessions_started_total",
		Help: "Rounds started.",
	})

	SessionsEnded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spyroom_sessions_ended_total",
		Help: "Rounds ended, labelled by resolution reason.",
	}, []string{"reason"})

	ClientErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spyroom_client_errors_total",
		Help: "Requests rejected with an error event.",
	})
)
