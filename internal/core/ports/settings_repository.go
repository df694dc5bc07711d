package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// SettingsRepository persists the singleton settings document.
type SettingsRepository interface {
	// Get returns the persisted settings or domain.ErrSettingsNotFound when
	// the collection is empty.
	Get(ctx context.Context) (*domain.Settings, error)
	// Save upserts the singleton document, overwriting all three fields.
	Save(ctx context.Context, s domain.Settings) error
}
