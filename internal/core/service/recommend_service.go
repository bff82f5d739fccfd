package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/soundvault/catalog-api/internal/api/metrics"
	"github.com/soundvault/catalog-api/internal/core/ports"
)

const (
	userIDOutOfRange = "User ID was invalid, please enter an ID between 1 and 3"
	songIDOutOfRange = "Song ID was invalid, please enter an ID between 1 and 5"
)

// The model was trained on a fixed population; IDs outside these tables are
// answered with explanatory text, not an error.
var recommendUsers = map[int]string{
	1: "Administrator",
	2: "Guest",
	3: "WGU",
}

var recommendSongs = map[int]string{
	1: "Hail to the King",
	2: "Faint",
	3: "Master of Puppets",
	4: "Breathing",
	5: "Lying from You",
}

// ScoreCache abstracts the prediction score cache (Redis).
type ScoreCache interface {
	Get(ctx context.Context, userID, songID int) (float64, bool, error)
	Set(ctx context.Context, userID, songID int, score float64) error
}

type recommendService struct {
	predictor ports.ScorePredictor
	cache     ScoreCache
	log       zerolog.Logger
}

// NewRecommendService returns a RecommendationService backed by the given
// predictor and cache.
func NewRecommendService(predictor ports.ScorePredictor, cache ScoreCache, log zerolog.Logger) ports.RecommendationService {
	return &recommendService{predictor: predictor, cache: cache, log: log}
}

// Recommend resolves a rating prediction to human-readable text. Out-of-range
// IDs yield explanatory text with a 200-class outcome rather than an error.
func (s *recommendService) Recommend(ctx context.Context, userID, songID int) (string, error) {
	userName, ok := recommendUsers[userID]
	if !ok {
		metrics.RecommendationsTotal.WithLabelValues("out_of_range").Inc()
		return userIDOutOfRange, nil
	}
	songName, ok := recommendSongs[songID]
	if !ok {
		metrics.RecommendationsTotal.WithLabelValues("out_of_range").Inc()
		return songIDOutOfRange, nil
	}

	score, hit, err := s.cache.Get(ctx, userID, songID)
	if err != nil {
		s.log.Warn().Err(err).Int("user_id", userID).Int("song_id", songID).Msg("score cache read failed, predicting anyway")
		hit = false
	}

	if !hit {
		score, err = s.predictor.Predict(ctx, userID, songID)
		if err != nil {
			return "", err
		}
		if cacheErr := s.cache.Set(ctx, userID, songID, score); cacheErr != nil {
			s.log.Warn().Err(cacheErr).Msg("score cache write failed")
		}
		metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.RecommendationsTotal.WithLabelValues("cache_hit").Inc()
	}

	rounded := math.Round(score*100) / 100
	return fmt.Sprintf("The Song rating prediction for the Song %s on the User %s is %v", songName, userName, rounded), nil
}
