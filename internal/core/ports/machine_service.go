package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// MachineService defines use-case operations for machines. Break and Repair
// cascade into the bookings collection: breaking removes the machine's
// regular bookings, repairing removes its maintenance bookings.
type MachineService interface {
	List(ctx context.Context) ([]*domain.Machine, error)
	Break(ctx context.Context, name string) error
	Repair(ctx context.Context, name string) error
}
