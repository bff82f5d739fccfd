package ports

import (
	"context"

	"github.com/soundvault/catalog-api/internal/core/domain"
)

type SongService interface {
	Create(ctx context.Context, song domain.Song) (*domain.Song, error)
	List(ctx context.Context) ([]domain.Song, error)
	// QueryByField returns every entry whose attribute equals value; an empty
	// match set is an empty slice, not an error.
	QueryByField(ctx context.Context, field domain.SongField, value any) ([]domain.Song, error)
	Update(ctx context.Context, song domain.Song) (*domain.Song, error)
	Delete(ctx context.Context, title, album string) error
}
