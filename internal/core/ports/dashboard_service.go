package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// DashboardSummary is the aggregate view behind the admin landing page.
// BookingsData carries the full booking list; the panel derives its
// per-machine bar chart from it.
type DashboardSummary struct {
	Bookings     int               `json:"bookings"`
	FreeMachines int               `json:"freeMachines"`
	BookedByWho  string            `json:"bookedByWho"`
	BookingsData []*domain.Booking `json:"bookingsData"`
}

// DashboardService assembles the dashboard summary. Purely derived state;
// it never writes.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
