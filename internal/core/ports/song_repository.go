package ports

import (
	"context"

	"github.com/soundvault/catalog-api/internal/core/domain"
)

// SongRepository defines the persistence contract for catalog entries.
type SongRepository interface {
	// FindByKey is a point lookup by the (title, album) composite key.
	FindByKey(ctx context.Context, title, album string) (*domain.Song, error)
	// FindAll scans the whole table.
	FindAll(ctx context.Context) ([]domain.Song, error)
	// FindByField scans with an exact-match filter on a single attribute.
	// A miss yields an empty slice, never an error.
	FindByField(ctx context.Context, field domain.SongField, value any) ([]domain.Song, error)
	// Create inserts a new entry, returning domain.ErrSongExists on a
	// duplicate composite key.
	Create(ctx context.Context, song *domain.Song) error
	// Save replaces the entry under its composite key. A store-level write
	// conflict surfaces as domain.ErrStoreConflict.
	Save(ctx context.Context, song *domain.Song) error
	// Delete removes the entry, returning domain.ErrSongNotFound when absent.
	Delete(ctx context.Context, title, album string) error
}
