package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// SubmitBookingInput carries all data needed to request a booking.
type SubmitBookingInput struct {
	Machine       string
	Time          string
	User          string
	IsMaintenance bool
}

// BookingService is the admission controller: it decides whether a booking
// request may be created and applies the compound state change (booking
// insert + machine update) when it is.
type BookingService interface {
	Submit(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Booking, error)
}
