package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scoreTTL = time.Hour

// ScoreCache caches recommendation scores in Redis.
// Key format: score:<user_id>:<song_id>
type ScoreCache struct {
	client *redis.Client
}

// NewScoreCache creates a ScoreCache wrapping the given Redis client.
func NewScoreCache(client *redis.Client) *ScoreCache {
	return &ScoreCache{client: client}
}

// Get returns the cached score for the pair, with a hit flag.
func (c *ScoreCache) Get(ctx context.Context, userID, songID int) (float64, bool, error) {
	score, err := c.client.Get(ctx, c.key(userID, songID)).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("score cache get: %w", err)
	}
	return score, true, nil
}

// Set records the score for the pair (expires after scoreTTL).
func (c *ScoreCache) Set(ctx context.Context, userID, songID int, score float64) error {
	return c.client.Set(ctx, c.key(userID, songID), score, scoreTTL).Err()
}

func (c *ScoreCache) key(userID, songID int) string {
	return fmt.Sprintf("score:%d:%d", userID, songID)
}
