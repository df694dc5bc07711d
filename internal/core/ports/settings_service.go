package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// SettingsService returns and saves the laundry-room settings. Get never
// fails on an empty collection; it falls back to the defaults instead.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}
