// Package metrics defines and registers all custom Prometheus metrics for the
// laundry admin service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at package
// init; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laundry"

// BookingsCreatedTotal counts bookings admitted by the admission controller.
// Label:
//   - kind: "regular" or "maintenance"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings successfully created.",
	},
	[]string{"kind"},
)

// BookingsRejectedTotal counts booking requests the admission controller
// turned away.
// Label:
//   - reason: short rejection cause (e.g. "resident_blocked", "slot_taken",
//     "machine_busy", "limit_reached", "resident_not_found", "machine_not_found")
var BookingsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_rejected_total",
		Help:      "Total number of booking requests rejected, by reason.",
	},
	[]string{"reason"},
)

// BookingsCancelledTotal counts bookings removed through the cancel endpoint
// (cascade deletions are counted separately).
var BookingsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled by the admin.",
	},
)

// CascadeDeletesTotal counts bookings removed as a side effect of a lifecycle
// operation.
// Label:
//   - trigger: "block", "break", or "repair"
var CascadeDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletes_total",
		Help:      "Total number of bookings removed by cascading lifecycle operations.",
	},
	[]string{"trigger"},
)
