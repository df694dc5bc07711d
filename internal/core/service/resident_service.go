package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Manish26364/sevas-admin/internal/api/metrics"
	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// ResidentService implements resident lifecycle operations.
type ResidentService struct {
	residents ports.ResidentRepository
	bookings  ports.BookingRepository
	lock      *StoreLock
	logger    zerolog.Logger
}

func NewResidentService(
	residents ports.ResidentRepository,
	bookings ports.BookingRepository,
	lock *StoreLock,
	logger zerolog.Logger,
) *ResidentService {
	return &ResidentService{residents: residents, bookings: bookings, lock: lock, logger: logger}
}

func (s *ResidentService) List(ctx context.Context) ([]*domain.Resident, error) {
	return s.residents.List(ctx)
}

func (s *ResidentService) Add(ctx context.Context, input ports.AddResidentInput) (*domain.Resident, error) {
	resident := &domain.Resident{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Room:    input.Room,
		Blocked: false,
	}
	if err := s.residents.Insert(ctx, resident); err != nil {
		return nil, fmt.Errorf("add resident: %w", err)
	}

	s.logger.Info().Str("resident_id", resident.ID).Str("name", resident.Name).Str("room", resident.Room).Msg("resident added")
	return resident, nil
}

// Block flags the resident and cascade-deletes their pending regular
// bookings. The affected machines keep whatever status they had; only a
// cancel or repair resets them.
func (s *ResidentService) Block(ctx context.Context, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	resident, err := s.residents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.residents.SetBlocked(ctx, id, true); err != nil {
		return fmt.Errorf("block resident: %w", err)
	}

	removed, err := s.bookings.DeleteRegularByUser(ctx, resident.Name)
	if err != nil {
		return fmt.Errorf("block resident: cascade delete: %w", err)
	}
	metrics.CascadeDeletesTotal.WithLabelValues("block").Add(float64(removed))

	s.logger.Info().
		Str("resident_id", id).
		Str("name", resident.Name).
		Int64("bookings_removed", removed).
		Msg("resident blocked")
	return nil
}

func (s *ResidentService) Unblock(ctx context.Context, id string) error {
	if _, err := s.residents.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.residents.SetBlocked(ctx, id, false); err != nil {
		return fmt.Errorf("unblock resident: %w", err)
	}

	s.logger.Info().Str("resident_id", id).Msg("resident unblocked")
	return nil
}
