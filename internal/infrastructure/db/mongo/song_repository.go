package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soundvault/catalog-api/internal/core/domain"
)

const collectionSongs = "songs"

// SongRepository persists catalog entries keyed by the (title, album) pair,
// enforced unique by a compound index.
type SongRepository struct {
	col *mongo.Collection
}

func NewSongRepository(db *mongo.Database) *SongRepository {
	return &SongRepository{col: db.Collection(collectionSongs)}
}

func keyFilter(title, album string) bson.M {
	return bson.M{"title": title, "album": album}
}

// FindByKey performs a point lookup on the composite key.
func (r *SongRepository) FindByKey(ctx context.Context, title, album string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Song
	err := r.col.FindOne(ctx, keyFilter(title, album)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSongNotFound
		}
		return nil, fmt.Errorf("find song: %w", err)
	}
	return &s, nil
}

// FindAll scans the whole collection.
func (r *SongRepository) FindAll(ctx context.Context) ([]domain.Song, error) {
	return r.find(ctx, bson.D{})
}

// FindByField scans with an exact-match filter on a single attribute.
func (r *SongRepository) FindByField(ctx context.Context, field domain.SongField, value any) ([]domain.Song, error) {
	return r.find(ctx, bson.M{string(field): value})
}

func (r *SongRepository) find(ctx context.Context, filter any) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("scan songs: %w", err)
	}
	defer cur.Close(ctx)

	songs := make([]domain.Song, 0)
	if err := cur.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}

// Create inserts a new entry. The unique (title, album) index makes a
// duplicate composite key a duplicate-key error, reported as domain.ErrSongExists.
func (r *SongRepository) Create(ctx context.Context, song *domain.Song) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, song); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSongExists
		}
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

// Save replaces the entry under its composite key. A concurrent deletion
// surfaces as domain.ErrSongNotFound, a server-side write conflict as
// domain.ErrStoreConflict.
func (r *SongRepository) Save(ctx context.Context, song *domain.Song) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, keyFilter(song.Title, song.Album), song)
	if err != nil {
		if isWriteConflict(err) {
			return domain.ErrStoreConflict
		}
		return fmt.Errorf("save song: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Delete removes the entry by composite key.
func (r *SongRepository) Delete(ctx context.Context, title, album string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, keyFilter(title, album))
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// EnsureIndexes creates the unique composite-key index on the songs collection.
func (r *SongRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}, {Key: "album", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// writeConflictCode is MongoDB's server error code for transient write
// conflicts between concurrent operations.
const writeConflictCode = 112

func isWriteConflict(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == writeConflictCode {
				return true
			}
		}
	}
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == writeConflictCode
}
