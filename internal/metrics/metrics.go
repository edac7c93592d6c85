package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lendshare",
			Name:      "booking_created_total",
			Help:      "Count of booking requests accepted into WAITING.",
		},
	)

	bookingDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendshare",
			Name:      "booking_decision_total",
			Help:      "Count of owner decisions over bookings.",
		},
		[]string{"decision"},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lendshare",
			Name:      "booking_conflict_total",
			Help:      "Count of booking requests rejected because of window overlap.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingDecision, bookingConflict)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingDecision(decision string) {
	bookingDecision.WithLabelValues(decision).Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}
