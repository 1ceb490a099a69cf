package queue

import (
	"math"

	"github.com/abhisek/learnpath/internal/policy"
)

// DailyLoad is a recommended study load for one day.
type DailyLoad struct {
	NewCards         int     `json:"new_cards"`
	ReviewCards      int     `json:"review_cards"`
	EstimatedMinutes float64 `json:"estimated_minutes"`
}

// RecommendDailyLoad sizes a day's session from the collection size and the
// fraction of cards assumed mature. This is a fixed pacing heuristic, not
// derived from the queue itself; the caps and per-card estimates come from
// policy.
func RecommendDailyLoad(cardCount int, maturePct float64, pol policy.Policy) DailyLoad {
	if cardCount < 0 {
		cardCount = 0
	}
	maturePct = math.Min(math.Max(maturePct, 0), 1)

	matureCount := int(math.Round(float64(cardCount) * maturePct))

	newCards := cardCount - matureCount
	if newCards > pol.MaxNewCardsPerDay {
		newCards = pol.MaxNewCardsPerDay
	}
	reviewCards := matureCount
	if reviewCards > pol.MaxReviewCardsPerDay {
		reviewCards = pol.MaxReviewCardsPerDay
	}

	return DailyLoad{
		NewCards:         newCards,
		ReviewCards:      reviewCards,
		EstimatedMinutes: float64(newCards)*pol.NewCardMinutes + float64(reviewCards)*pol.ReviewCardMinutes,
	}
}
