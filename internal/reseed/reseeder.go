// Package reseed implements the reconciliation job: a recurring task that
// wipes both stores and reinserts the fixed baseline dataset. It runs with
// implicit trust, sharing the repository handles with the request path without
// any lock; a request racing a run may observe a transiently empty store.
package reseed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/soundvault/catalog-api/internal/api/metrics"
	"github.com/soundvault/catalog-api/internal/core/ports"
)

const defaultInterval = 24 * time.Hour

// Reseeder drives the periodic wipe-and-reseed of the song and user stores.
type Reseeder struct {
	songs    ports.SongRepository
	users    ports.UserRepository
	interval time.Duration
	log      zerolog.Logger
}

// NewReseeder creates a Reseeder. If interval <= 0, defaultInterval is used.
func NewReseeder(songs ports.SongRepository, users ports.UserRepository, interval time.Duration, log zerolog.Logger) *Reseeder {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reseeder{songs: songs, users: users, interval: interval, log: log}
}

// Run blocks, executing a reconciliation run on every tick until ctx is
// cancelled. Cancellation stops further ticks; a run already in progress is
// not rolled back. When runNow is set, one run executes before the first tick.
func (r *Reseeder) Run(ctx context.Context, runNow bool) {
	if runNow {
		r.runOnce(ctx)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("reseeder stopped")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Reseeder) runOnce(ctx context.Context) {
	start := time.Now()
	if err := r.Reconcile(ctx); err != nil {
		metrics.ReseedRunsTotal.WithLabelValues("error").Inc()
		r.log.Error().Err(err).Msg("reconciliation run failed, store may be partially seeded")
		return
	}
	metrics.ReseedRunsTotal.WithLabelValues("ok").Inc()
	metrics.ReseedDuration.Observe(time.Since(start).Seconds())
	r.log.Info().Dur("took", time.Since(start)).Msg("stores reconciled to baseline")
}

// Reconcile converges both stores to the baseline snapshot: every existing
// record is scanned and deleted, then the fixed dataset is reinserted. The
// operation is idempotent in effect; a failure aborts the run mid-way (the
// next run reconverges) rather than rolling back.
func (r *Reseeder) Reconcile(ctx context.Context) error {
	if err := r.reseedSongs(ctx); err != nil {
		return fmt.Errorf("reseed songs: %w", err)
	}
	if err := r.reseedUsers(ctx); err != nil {
		return fmt.Errorf("reseed users: %w", err)
	}
	return nil
}

func (r *Reseeder) reseedSongs(ctx context.Context) error {
	existing, err := r.songs.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, s := range existing {
		if err := r.songs.Delete(ctx, s.Title, s.Album); err != nil {
			return err
		}
	}
	for _, s := range BaselineSongs() {
		if err := r.songs.Create(ctx, &s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reseeder) reseedUsers(ctx context.Context) error {
	existing, err := r.users.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, u := range existing {
		if err := r.users.Delete(ctx, u.Username); err != nil {
			return err
		}
	}
	for _, u := range BaselineUsers() {
		if err := r.users.Create(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}
