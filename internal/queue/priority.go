package queue

import (
	"time"

	"github.com/abhisek/learnpath/internal/sm2"
)

// Priority classifies how urgently a single card needs review.
type Priority string

const (
	PriorityOverdue  Priority = "overdue"
	PriorityToday    Priority = "today"
	PriorityTomorrow Priority = "tomorrow"
	PriorityFuture   Priority = "future"
)

// Classify returns the review priority of one card relative to now.
func Classify(c sm2.Card, now time.Time) Priority {
	today := sm2.Midnight(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch {
	case c.NextReviewDate.Before(today):
		return PriorityOverdue
	case c.NextReviewDate.Before(tomorrow):
		return PriorityToday
	case c.NextReviewDate.Before(tomorrow.AddDate(0, 0, 1)):
		return PriorityTomorrow
	default:
		return PriorityFuture
	}
}
