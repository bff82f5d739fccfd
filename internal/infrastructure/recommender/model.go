// Package recommender holds the pre-trained song rating model. The model is a
// black box to the rest of the system: callers only see ports.ScorePredictor.
package recommender

import (
	"context"
	"fmt"
)

// ratings is the exported weight table of the trained model: one row per
// user (1..3), one column per song (1..5). Scores are on a 0-5 scale.
var ratings = [3][5]float64{
	{4.73, 3.12, 4.91, 2.84, 3.55},
	{3.96, 4.42, 3.21, 4.67, 4.08},
	{2.58, 3.87, 4.33, 3.02, 2.76},
}

// Model predicts a rating score for a (user, song) pair.
type Model struct{}

func New() *Model {
	return &Model{}
}

// Predict returns the trained score for the pair. IDs outside the training
// population are an error; the service layer range-checks before calling.
func (m *Model) Predict(_ context.Context, userID, songID int) (float64, error) {
	if userID < 1 || userID > len(ratings) {
		return 0, fmt.Errorf("user id %d outside trained population", userID)
	}
	if songID < 1 || songID > len(ratings[0]) {
		return 0, fmt.Errorf("song id %d outside trained population", songID)
	}
	return ratings[userID-1][songID-1], nil
}
