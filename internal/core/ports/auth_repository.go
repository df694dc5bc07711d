package ports

import (
	"context"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// AuthRepository defines the interface for admin account lookup.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
