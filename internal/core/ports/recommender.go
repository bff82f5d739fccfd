package ports

import "context"

// ScorePredictor is the pre-trained rating model, treated as a black box.
type ScorePredictor interface {
	Predict(ctx context.Context, userID, songID int) (float64, error)
}

// RecommendationService produces the human-readable rating prediction text.
type RecommendationService interface {
	Recommend(ctx context.Context, userID, songID int) (string, error)
}
