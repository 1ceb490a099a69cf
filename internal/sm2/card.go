package sm2

import "time"

// ReviewEntry is one row of a card's append-only review history.
type ReviewEntry struct {
	Quality        Quality   `json:"quality"`
	ResponseTimeMs int       `json:"response_time_ms"`
	Date           time.Time `json:"date"`
}

// Card holds the spaced repetition state for one learner/item pair.
// It is a value type: Review returns a new Card and never mutates its input.
type Card struct {
	LearnerID      string        `json:"learner_id"`
	ItemID         string        `json:"item_id"`
	EaseFactor     float64       `json:"ease_factor"`
	Interval       int           `json:"interval"`
	Repetition     int           `json:"repetition"`
	LastQuality    Quality       `json:"last_quality"`
	NextReviewDate time.Time     `json:"next_review_date"`
	LastReviewDate *time.Time    `json:"last_review_date,omitempty"`
	History        []ReviewEntry `json:"history,omitempty"`
}

// IsMature reports whether the card has graduated into long-term retention.
// A card is mature once it has at least five successful repetitions, its
// last recall was comfortable, and its interval has grown past a month.
func (c Card) IsMature() bool {
	return c.Repetition >= 5 &&
		c.LastQuality >= QualityCorrectHesitation &&
		c.Interval >= MatureIntervalDays
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
