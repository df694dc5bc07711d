package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Manish26364/sevas-admin/internal/api/metrics"
	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// BookingService is the admission controller. All compound state changes run
// under the shared StoreLock so the check-then-write sequence cannot
// interleave with another request in this process.
type BookingService struct {
	bookings  ports.BookingRepository
	residents ports.ResidentRepository
	machines  ports.MachineRepository
	settings  ports.SettingsService
	lock      *StoreLock
	logger    zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	residents ports.ResidentRepository,
	machines ports.MachineRepository,
	settings ports.SettingsService,
	lock *StoreLock,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		residents: residents,
		machines:  machines,
		settings:  settings,
		lock:      lock,
		logger:    logger,
	}
}

// Submit runs the admission checks in order, short-circuiting on the first
// failure, and on success inserts the booking and updates the machine:
//
//  1. resident exists and is not blocked (skipped for maintenance)
//  2. resident is below the maxBookings limit (skipped for maintenance)
//  3. machine exists
//  4. machine is free (skipped for maintenance)
//  5. the (machine, time) slot is not already taken
//
// A maintenance booking puts the machine out of order; a regular booking
// marks it busy and adds bookingDuration hours to its usage counter.
func (s *BookingService) Submit(ctx context.Context, input ports.SubmitBookingInput) (*domain.Booking, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit booking: load settings: %w", err)
	}

	if !input.IsMaintenance {
		resident, err := s.residents.FindByName(ctx, input.User)
		if err != nil {
			if errors.Is(err, domain.ErrResidentNotFound) {
				metrics.BookingsRejectedTotal.WithLabelValues("resident_not_found").Inc()
			}
			return nil, err
		}
		if resident.Blocked {
			metrics.BookingsRejectedTotal.WithLabelValues("resident_blocked").Inc()
			return nil, domain.ErrResidentBlocked
		}

		count, err := s.bookings.CountRegularByUser(ctx, input.User)
		if err != nil {
			return nil, fmt.Errorf("submit booking: count bookings: %w", err)
		}
		if count >= int64(cfg.MaxBookings) {
			metrics.BookingsRejectedTotal.WithLabelValues("limit_reached").Inc()
			return nil, domain.ErrBookingLimitReached
		}
	}

	machine, err := s.machines.FindByName(ctx, input.Machine)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			metrics.BookingsRejectedTotal.WithLabelValues("machine_not_found").Inc()
		}
		return nil, err
	}
	if !input.IsMaintenance && machine.Status != domain.MachineFree {
		metrics.BookingsRejectedTotal.WithLabelValues("machine_busy").Inc()
		return nil, domain.ErrMachineBusy
	}

	if _, err := s.bookings.FindByMachineAndTime(ctx, input.Machine, input.Time); err == nil {
		metrics.BookingsRejectedTotal.WithLabelValues("slot_taken").Inc()
		return nil, domain.ErrSlotTaken
	} else if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("submit booking: slot lookup: %w", err)
	}

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		Machine:       input.Machine,
		Time:          input.Time,
		User:          input.User,
		IsMaintenance: input.IsMaintenance,
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("submit booking: insert: %w", err)
	}

	status := domain.MachineBusy
	usageDelta := cfg.BookingDuration
	kind := "regular"
	if input.IsMaintenance {
		status = domain.MachineOutOfOrder
		usageDelta = 0
		kind = "maintenance"
	}
	if err := s.machines.UpdateStatus(ctx, input.Machine, status, usageDelta); err != nil {
		// Undo the insert so readers never observe a booking whose machine
		// was left untouched.
		_ = s.bookings.Delete(ctx, booking.ID)
		return nil, fmt.Errorf("submit booking: update machine: %w", err)
	}

	metrics.BookingsCreatedTotal.WithLabelValues(kind).Inc()
	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("machine", booking.Machine).
		Str("time", booking.Time).
		Str("user", booking.User).
		Bool("maintenance", booking.IsMaintenance).
		Msg("booking created")

	return booking, nil
}

// Cancel removes the booking and, for regular bookings, frees the machine.
// The usage counter is deliberately not rolled back.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !booking.IsMaintenance {
		// A booking may outlive its machine record; the cancel still stands.
		if err := s.machines.UpdateStatus(ctx, booking.Machine, domain.MachineFree, 0); err != nil && !errors.Is(err, domain.ErrMachineNotFound) {
			return fmt.Errorf("cancel booking: free machine: %w", err)
		}
	}

	metrics.BookingsCancelledTotal.Inc()
	s.logger.Info().Str("booking_id", id).Str("machine", booking.Machine).Msg("booking cancelled")
	return nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx)
}
