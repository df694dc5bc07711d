package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Manish26364/sevas-admin/internal/api/metrics"
	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// MachineService implements machine lifecycle operations.
type MachineService struct {
	machines ports.MachineRepository
	bookings ports.BookingRepository
	lock     *StoreLock
	logger   zerolog.Logger
}

func NewMachineService(
	machines ports.MachineRepository,
	bookings ports.BookingRepository,
	lock *StoreLock,
	logger zerolog.Logger,
) *MachineService {
	return &MachineService{machines: machines, bookings: bookings, lock: lock, logger: logger}
}

func (s *MachineService) List(ctx context.Context) ([]*domain.Machine, error) {
	return s.machines.List(ctx)
}

// Break marks the machine out of order and cascade-deletes its regular
// bookings. Maintenance bookings survive so scheduled repair slots stay
// visible.
func (s *MachineService) Break(ctx context.Context, name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.machines.FindByName(ctx, name); err != nil {
		return err
	}
	if err := s.machines.UpdateStatus(ctx, name, domain.MachineOutOfOrder, 0); err != nil {
		return fmt.Errorf("break machine: %w", err)
	}

	removed, err := s.bookings.DeleteByMachine(ctx, name, false)
	if err != nil {
		return fmt.Errorf("break machine: cascade delete: %w", err)
	}
	metrics.CascadeDeletesTotal.WithLabelValues("break").Add(float64(removed))

	s.logger.Info().Str("machine", name).Int64("bookings_removed", removed).Msg("machine marked out of order")
	return nil
}

// Repair frees the machine and cascade-deletes its maintenance bookings.
func (s *MachineService) Repair(ctx context.Context, name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.machines.FindByName(ctx, name); err != nil {
		return err
	}
	if err := s.machines.UpdateStatus(ctx, name, domain.MachineFree, 0); err != nil {
		return fmt.Errorf("repair machine: %w", err)
	}

	removed, err := s.bookings.DeleteByMachine(ctx, name, true)
	if err != nil {
		return fmt.Errorf("repair machine: cascade delete: %w", err)
	}
	metrics.CascadeDeletesTotal.WithLabelValues("repair").Add(float64(removed))

	s.logger.Info().Str("machine", name).Int64("bookings_removed", removed).Msg("machine repaired")
	return nil
}
