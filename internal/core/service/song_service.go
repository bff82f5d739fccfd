package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/soundvault/catalog-api/internal/api/metrics"
	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/core/ports"
)

// SongService implements catalog CRUD over the external key-value store.
type SongService struct {
	repo   ports.SongRepository
	logger zerolog.Logger
}

func NewSongService(repo ports.SongRepository, logger zerolog.Logger) *SongService {
	return &SongService{repo: repo, logger: logger}
}

// Create stores a new catalog entry, rejecting duplicates of the
// (title, album) composite key.
func (s *SongService) Create(ctx context.Context, song domain.Song) (*domain.Song, error) {
	if !song.Normalize() {
		return nil, domain.ErrEmptyField
	}

	if _, err := s.repo.FindByKey(ctx, song.Title, song.Album); err == nil {
		return nil, domain.ErrSongExists
	} else if !errors.Is(err, domain.ErrSongNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, &song); err != nil {
		return nil, err
	}

	metrics.SongsWrittenTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("title", song.Title).Str("album", song.Album).Msg("song created")
	return &song, nil
}

func (s *SongService) List(ctx context.Context) ([]domain.Song, error) {
	return s.repo.FindAll(ctx)
}

func (s *SongService) QueryByField(ctx context.Context, field domain.SongField, value any) ([]domain.Song, error) {
	return s.repo.FindByField(ctx, field, value)
}

// Update replaces an existing entry in place. A store-level write conflict
// triggers an existence recheck: a vanished entry reports not-found, a
// surviving one reports the conflict upward as service-unavailable.
func (s *SongService) Update(ctx context.Context, song domain.Song) (*domain.Song, error) {
	if !song.Normalize() {
		return nil, domain.ErrEmptyField
	}

	if _, err := s.repo.FindByKey(ctx, song.Title, song.Album); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, &song); err != nil {
		if errors.Is(err, domain.ErrStoreConflict) {
			if _, findErr := s.repo.FindByKey(ctx, song.Title, song.Album); errors.Is(findErr, domain.ErrSongNotFound) {
				return nil, domain.ErrSongNotFound
			}
			return nil, domain.ErrStoreConflict
		}
		return nil, err
	}

	metrics.SongsWrittenTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("title", song.Title).Str("album", song.Album).Msg("song updated")
	return &song, nil
}

func (s *SongService) Delete(ctx context.Context, title, album string) error {
	if err := s.repo.Delete(ctx, title, album); err != nil {
		return err
	}
	metrics.SongsWrittenTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("title", title).Str("album", album).Msg("song deleted")
	return nil
}
