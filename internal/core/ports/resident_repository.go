package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// ResidentRepository defines persistence operations for the residents collection.
type ResidentRepository interface {
	List(ctx context.Context) ([]*domain.Resident, error)
	FindByID(ctx context.Context, id string) (*domain.Resident, error)
	// FindByName matches the resident name case-insensitively; it is the
	// lookup used to tie a booking request back to a resident record.
	FindByName(ctx context.Context, name string) (*domain.Resident, error)
	Insert(ctx context.Context, r *domain.Resident) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
}
