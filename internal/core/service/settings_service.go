package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
	"github.com/Manish26364/sevas-admin/internal/core/ports"
)

// SettingsService reads and saves the singleton settings record.
type SettingsService struct {
	settings ports.SettingsRepository
	logger   zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

// Get returns the persisted settings, or the defaults when nothing has been
// saved yet.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return *current, nil
}

// Save upserts the singleton record. Field presence and numeric coercion are
// the transport layer's job; no bounds are enforced here.
func (s *SettingsService) Save(ctx context.Context, cfg domain.Settings) error {
	if err := s.settings.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.logger.Info().
		Int("booking_duration", cfg.BookingDuration).
		Int("max_bookings", cfg.MaxBookings).
		Int("max_days_ahead", cfg.MaxDaysAhead).
		Msg("settings saved")
	return nil
}
