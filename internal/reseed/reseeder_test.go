package reseed

import (
	"context"
	"testing"
	"time"

	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/pkg/hasher"
	"github.com/soundvault/catalog-api/pkg/logger"
)

type memSongRepo struct {
	songs map[string]domain.Song
}

func newMemSongRepo() *memSongRepo {
	return &memSongRepo{songs: make(map[string]domain.Song)}
}

func songKey(title, album string) string { return title + "|" + album }

func (r *memSongRepo) FindByKey(_ context.Context, title, album string) (*domain.Song, error) {
	s, ok := r.songs[songKey(title, album)]
	if !ok {
		return nil, domain.ErrSongNotFound
	}
	return &s, nil
}

func (r *memSongRepo) FindAll(_ context.Context) ([]domain.Song, error) {
	all := make([]domain.Song, 0, len(r.songs))
	for _, s := range r.songs {
		all = append(all, s)
	}
	return all, nil
}

func (r *memSongRepo) FindByField(_ context.Context, field domain.SongField, value any) ([]domain.Song, error) {
	return nil, nil
}

func (r *memSongRepo) Create(_ context.Context, song *domain.Song) error {
	key := songKey(song.Title, song.Album)
	if _, exists := r.songs[key]; exists {
		return domain.ErrSongExists
	}
	r.songs[key] = *song
	return nil
}

func (r *memSongRepo) Save(_ context.Context, song *domain.Song) error {
	r.songs[songKey(song.Title, song.Album)] = *song
	return nil
}

func (r *memSongRepo) Delete(_ context.Context, title, album string) error {
	key := songKey(title, album)
	if _, exists := r.songs[key]; !exists {
		return domain.ErrSongNotFound
	}
	delete(r.songs, key)
	return nil
}

type memUserRepo struct {
	users map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]domain.User)}
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, nil
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.users[user.Username] = *user
	return nil
}

func (r *memUserRepo) Save(_ context.Context, user *domain.User) error {
	r.users[user.Username] = *user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, username string) error {
	if _, exists := r.users[username]; !exists {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

func testReseeder(songs *memSongRepo, users *memUserRepo, interval time.Duration) *Reseeder {
	logger.Reset()
	return NewReseeder(songs, users, interval, logger.Init(logger.Options{Level: "error"}))
}

func TestReconcile_ConvergesToBaseline(t *testing.T) {
	songs := newMemSongRepo()
	users := newMemUserRepo()

	// Pre-existing mutations the run must wipe.
	_ = songs.Create(context.Background(), &domain.Song{Title: "Stray", Album: "Somewhere"})
	_ = users.Create(context.Background(), &domain.User{Username: "intruder", Password: "x", Role: domain.RoleAdministrator})

	r := testReseeder(songs, users, time.Hour)
	if err := r.Reconcile(context.Background()); err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}

	if len(songs.songs) != 5 {
		t.Fatalf("expected 5 baseline songs, got %d", len(songs.songs))
	}
	if _, err := songs.FindByKey(context.Background(), "Stray", "Somewhere"); err == nil {
		t.Fatalf("pre-existing song must be wiped")
	}

	master, err := songs.FindByKey(context.Background(), "Master of Puppets", "Master of Puppets")
	if err != nil {
		t.Fatalf("baseline song missing: %v", err)
	}
	if master.Artist != "Metallica" || master.Genre != "Heavy Metal" || master.ReleaseYear != 1986 {
		t.Fatalf("unexpected baseline entry: %+v", master)
	}

	if len(users.users) != 2 {
		t.Fatalf("expected 2 baseline users, got %d", len(users.users))
	}
	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("baseline admin missing: %v", err)
	}
	if admin.Password != hasher.Digest("admin") {
		t.Fatalf("baseline admin credential must verify against plaintext admin")
	}
	if admin.Role != domain.RoleAdministrator || admin.Age != 100 {
		t.Fatalf("unexpected baseline admin: %+v", admin)
	}
	guest, _ := users.FindByUsername(context.Background(), "guest")
	if guest == nil || guest.Password != hasher.Digest("password") || guest.Role != domain.RoleBasic {
		t.Fatalf("unexpected baseline guest: %+v", guest)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	songs := newMemSongRepo()
	users := newMemUserRepo()
	r := testReseeder(songs, users, time.Hour)

	if err := r.Reconcile(context.Background()); err != nil {
		t.Fatalf("first reconcile failed: %v", err)
	}
	if err := r.Reconcile(context.Background()); err != nil {
		t.Fatalf("second reconcile failed: %v", err)
	}
	if len(songs.songs) != 5 || len(users.users) != 2 {
		t.Fatalf("repeated runs must converge to the same snapshot, got %d songs %d users", len(songs.songs), len(users.users))
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	songs := newMemSongRepo()
	users := newMemUserRepo()
	r := testReseeder(songs, users, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, true)
		close(done)
	}()

	// Let at least one tick fire, then cancel.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("reseeder did not stop after cancellation")
	}

	if len(songs.songs) != 5 {
		t.Fatalf("expected seeded store after run, got %d songs", len(songs.songs))
	}
}
