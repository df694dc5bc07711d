package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// MachineRepository defines persistence operations for the machines collection.
type MachineRepository interface {
	List(ctx context.Context) ([]*domain.Machine, error)
	FindByName(ctx context.Context, name string) (*domain.Machine, error)
	// UpdateStatus sets the machine status and adds usageDelta hours to the
	// usage counter in a single document update.
	UpdateStatus(ctx context.Context, name string, status domain.MachineStatus, usageDelta int) error
}
