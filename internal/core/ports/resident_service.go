package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// AddResidentInput carries the fields of the add-resident form.
type AddResidentInput struct {
	Name  string
	Email string
	Room  string
}

// ResidentService defines use-case operations for residents. Blocking a
// resident cascades: their pending regular bookings are removed.
type ResidentService interface {
	List(ctx context.Context) ([]*domain.Resident, error)
	Add(ctx context.Context, input AddResidentInput) (*domain.Resident, error)
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
}
