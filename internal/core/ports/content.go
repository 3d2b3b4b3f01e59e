package ports

import (
	"context"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// CatalogRepository is the shared shape of the four ordered content
// collections (services, advantages, team members, reviews). List returns
// items sorted by their order field ascending.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository stores the singleton site configuration record.
type SettingsRepository interface {
	// Get returns the settings, or nil when none have been saved yet.
	Get(ctx context.Context) (*domain.Settings, error)
	// Put creates or replaces the singleton.
	Put(ctx context.Context, s *domain.Settings) error
}
