package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// BookingRepository defines persistence operations for the bookings collection.
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindByMachineAndTime retrieves the booking occupying the exact
	// (machine, time) slot, maintenance or not.
	FindByMachineAndTime(ctx context.Context, machine, time string) (*domain.Booking, error)
	// CountRegularByUser counts a resident's live non-maintenance bookings.
	// The user name is matched case-insensitively.
	CountRegularByUser(ctx context.Context, user string) (int64, error)
	Insert(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	// DeleteRegularByUser removes all non-maintenance bookings held by the
	// given user (case-insensitive) and reports how many were removed.
	DeleteRegularByUser(ctx context.Context, user string) (int64, error)
	// DeleteByMachine removes the machine's bookings of one kind
	// (maintenance or regular) and reports how many were removed.
	DeleteByMachine(ctx context.Context, machine string, maintenance bool) (int64, error)
}
