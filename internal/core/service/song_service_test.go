package service

import (
	"context"
	"errors"
	"testing"

	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/pkg/logger"
)

type stubSongRepo struct {
	songs        map[string]*domain.Song
	saveErr      error
	vanishOnSave bool
}

func newStubSongRepo() *stubSongRepo {
	return &stubSongRepo{songs: make(map[string]*domain.Song)}
}

func songKey(title, album string) string {
	return title + "|" + album
}

func (r *stubSongRepo) FindByKey(_ context.Context, title, album string) (*domain.Song, error) {
	s, ok := r.songs[songKey(title, album)]
	if !ok {
		return nil, domain.ErrSongNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSongRepo) FindAll(_ context.Context) ([]domain.Song, error) {
	all := make([]domain.Song, 0, len(r.songs))
	for _, s := range r.songs {
		all = append(all, *s)
	}
	return all, nil
}

func (r *stubSongRepo) FindByField(_ context.Context, field domain.SongField, value any) ([]domain.Song, error) {
	matched := make([]domain.Song, 0)
	for _, s := range r.songs {
		var v any
		switch field {
		case domain.FieldTitle:
			v = s.Title
		case domain.FieldAlbum:
			v = s.Album
		case domain.FieldArtist:
			v = s.Artist
		case domain.FieldGenre:
			v = s.Genre
		case domain.FieldReleaseYear:
			v = s.ReleaseYear
		}
		if v == value {
			matched = append(matched, *s)
		}
	}
	return matched, nil
}

func (r *stubSongRepo) Create(_ context.Context, song *domain.Song) error {
	key := songKey(song.Title, song.Album)
	if _, exists := r.songs[key]; exists {
		return domain.ErrSongExists
	}
	clone := *song
	r.songs[key] = &clone
	return nil
}

func (r *stubSongRepo) Save(_ context.Context, song *domain.Song) error {
	if r.saveErr != nil {
		if r.vanishOnSave {
			delete(r.songs, songKey(song.Title, song.Album))
		}
		return r.saveErr
	}
	key := songKey(song.Title, song.Album)
	if _, exists := r.songs[key]; !exists {
		return domain.ErrSongNotFound
	}
	clone := *song
	r.songs[key] = &clone
	return nil
}

func (r *stubSongRepo) Delete(_ context.Context, title, album string) error {
	key := songKey(title, album)
	if _, exists := r.songs[key]; !exists {
		return domain.ErrSongNotFound
	}
	delete(r.songs, key)
	return nil
}

func testSongService(repo *stubSongRepo) *SongService {
	logger.Reset()
	return NewSongService(repo, logger.Init(logger.Options{Level: "error"}))
}

func TestSongService_Create_Success(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	song, err := svc.Create(context.Background(), domain.Song{Title: " Faint ", Album: " Meteora ", Artist: "Linkin Park"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if song.Title != "Faint" || song.Album != "Meteora" {
		t.Fatalf("expected trimmed key fields, got %q/%q", song.Title, song.Album)
	}
}

func TestSongService_Create_EmptyKey(t *testing.T) {
	svc := testSongService(newStubSongRepo())

	if _, err := svc.Create(context.Background(), domain.Song{Title: "   ", Album: "Meteora", Artist: "Linkin Park", Genre: "Alternative"}); !errors.Is(err, domain.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField regardless of other fields, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Song{Title: "Faint", Album: ""}); !errors.Is(err, domain.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField for empty album, got %v", err)
	}
}

func TestSongService_Create_Duplicate(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	if _, err := svc.Create(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Song{Title: "Faint", Album: "Meteora", Artist: "Someone Else"}); !errors.Is(err, domain.ErrSongExists) {
		t.Fatalf("expected ErrSongExists, got %v", err)
	}
	if len(repo.songs) != 1 {
		t.Fatalf("store must still reflect only the first write")
	}
}

func TestSongService_QueryByField_EmptyMatch(t *testing.T) {
	svc := testSongService(newStubSongRepo())

	songs, err := svc.QueryByField(context.Background(), domain.FieldGenre, "Jazz")
	if err != nil {
		t.Fatalf("query returned error: %v", err)
	}
	if songs == nil {
		t.Fatalf("empty match set must be an empty slice, not nil")
	}
	if len(songs) != 0 {
		t.Fatalf("expected no matches, got %d", len(songs))
	}
}

func TestSongService_Update_NotFound(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	if _, err := svc.Update(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"}); !errors.Is(err, domain.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound, got %v", err)
	}
	if len(repo.songs) != 0 {
		t.Fatalf("update must never create the entry")
	}
}

func TestSongService_Update_Success(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	_, _ = svc.Create(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"})
	updated, err := svc.Update(context.Background(), domain.Song{Title: "Faint", Album: "Meteora", Artist: "Linkin Park", ReleaseYear: 2003})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Artist != "Linkin Park" || updated.ReleaseYear != 2003 {
		t.Fatalf("updated entry not returned: %+v", updated)
	}
}

func TestSongService_Update_ConflictRecheck(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	_, _ = svc.Create(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"})

	// Entry survives the conflict: surfaced as the conflict itself.
	repo.saveErr = domain.ErrStoreConflict
	if _, err := svc.Update(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"}); !errors.Is(err, domain.ErrStoreConflict) {
		t.Fatalf("expected ErrStoreConflict while entry exists, got %v", err)
	}

	// Entry vanished concurrently during the conflict: reported as not found.
	repo.vanishOnSave = true
	if _, err := svc.Update(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"}); !errors.Is(err, domain.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound after concurrent delete, got %v", err)
	}
}

func TestSongService_Delete_Twice(t *testing.T) {
	repo := newStubSongRepo()
	svc := testSongService(repo)

	_, _ = svc.Create(context.Background(), domain.Song{Title: "Faint", Album: "Meteora"})

	if err := svc.Delete(context.Background(), "Faint", "Meteora"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "Faint", "Meteora"); !errors.Is(err, domain.ErrSongNotFound) {
		t.Fatalf("expected ErrSongNotFound on second delete, got %v", err)
	}
}
