package models

import (
	"math"
	"time"
)

// Rating represents a single user-submitted star rating for a product.
// Records are append-only: no per-user identity is tracked, so repeat
// submissions for the same product each count separately.
type Rating struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsValid checks if the rating value is valid (1-5)
func (r *Rating) IsValid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

// RatingSummary aggregates user-submitted ratings only. Seed statistics are
// blended by the display layer, never here.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// BlendedRating combines a product's seeded average and count with a
// user-rating summary into a single weighted mean. Returns 0 when there are
// no ratings from either source.
func BlendedRating(seedRating float64, seedCount int, user RatingSummary) float64 {
	totalCount := seedCount + user.Count
	if totalCount == 0 {
		return 0
	}
	return (seedRating*float64(seedCount) + user.Average*float64(user.Count)) / float64(totalCount)
}

// seedHistogramWeights approximates the per-star breakdown of seeded review
// counts, from five stars down to one star. No per-star seed data exists, so
// this is a display heuristic, not an exact distribution.
var seedHistogramWeights = [5]float64{0.70, 0.20, 0.05, 0.03, 0.02}

// RatingHistogram returns approximate counts per star bucket, index 0 holding
// five-star counts down to index 4 holding one-star counts. Seed counts are
// scaled by fixed proportions and rounded; user ratings are bucketed exactly.
func RatingHistogram(seedCount int, userRatings []*Rating) [5]int {
	var histogram [5]int
	for i, weight := range seedHistogramWeights {
		histogram[i] = int(math.Round(weight * float64(seedCount)))
	}
	for _, r := range userRatings {
		if r.Rating >= 1 && r.Rating <= 5 {
			histogram[5-r.Rating]++
		}
	}
	return histogram
}
