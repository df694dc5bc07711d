package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// DashboardService assembles the landing-page summary from the bookings and
// machines collections. Read-only.
type DashboardService struct {
	bookings ports.BookingRepository
	machines ports.MachineRepository
}

func NewDashboardService(bookings ports.BookingRepository, machines ports.MachineRepository) *DashboardService {
	return &DashboardService{bookings: bookings, machines: machines}
}

func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list bookings: %w", err)
	}
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: list machines: %w", err)
	}

	free := 0
	for _, m := range machines {
		if m.Status == domain.MachineFree {
			free++
		}
	}

	return &ports.DashboardSummary{
		Bookings:     len(bookings),
		FreeMachines: free,
		BookedByWho:  bookedByWho(bookings),
		BookingsData: bookings,
	}, nil
}

// bookedByWho lists the distinct holders of regular bookings, sorted for a
// stable display, or "nobody" when there are none.
func bookedByWho(bookings []*domain.Booking) string {
	seen := make(map[string]struct{})
	var users []string
	for _, b := range bookings {
		if b.IsMaintenance {
			continue
		}
		if _, ok := seen[b.User]; ok {
			continue
		}
		seen[b.User] = struct{}{}
		users = append(users, b.User)
	}
	if len(users) == 0 {
		return "nobody"
	}
	sort.Strings(users)
	return strings.Join(users, ", ")
}
