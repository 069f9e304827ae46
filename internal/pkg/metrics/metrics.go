package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Domain counters exposed on /metrics
var (
	RidesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churchpool_rides_created_total",
		Help: "Number of rides published by drivers",
	})

	RidesCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churchpool_rides_cancelled_total",
		Help: "Number of rides cancelled by drivers",
	})

	BookingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "churchpool_booking_transitions_total",
		Help: "Booking state transitions by resulting status",
	}, []string{"status"})

	SeatReservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churchpool_seat_reservation_conflicts_total",
		Help: "Reservations refused because not enough seats remained",
	})

	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "churchpool_messages_sent_total",
		Help: "Chat messages appended by type",
	}, []string{"type"})

	LocationUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churchpool_location_updates_total",
		Help: "Location samples received from sharing sessions",
	})
)

// Register exposes the Prometheus scrape endpoint
func Register(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
