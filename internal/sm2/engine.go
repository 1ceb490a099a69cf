// Package sm2 implements the SuperMemo-2 spaced repetition algorithm as a
// set of pure transformations over explicit card state. Persistence of the
// resulting state is the caller's responsibility.
package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidQuality is returned when a review quality is outside [0, 5].
// Check with errors.Is.
var ErrInvalidQuality = errors.New("sm2: invalid quality rating")

const (
	// InitialEaseFactor is the ease factor assigned to new cards.
	InitialEaseFactor = 2.5
	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3
	// FirstInterval is the interval in days after the first successful review.
	FirstInterval = 1
	// SecondInterval is the interval in days after the second successful review.
	SecondInterval = 3
	// MatureIntervalDays is the interval at which a card counts as mature.
	MatureIntervalDays = 30
)

// Initialize returns the state for a card the learner has just been exposed
// to: default ease factor, a one day interval, and a first review tomorrow.
func Initialize(learnerID, itemID string, now time.Time) Card {
	return Card{
		LearnerID:      learnerID,
		ItemID:         itemID,
		EaseFactor:     InitialEaseFactor,
		Interval:       FirstInterval,
		Repetition:     0,
		NextReviewDate: Midnight(now).AddDate(0, 0, 1),
	}
}

// Review applies one review with the given quality to the card and returns
// the updated state. The input card is not modified.
//
// A quality below the pass threshold resets the repetition streak and
// schedules the card for tomorrow; a passing quality advances it along the
// 1, 3, round(interval*EF) ladder. The ease factor is updated in both cases
// and never drops below MinEaseFactor.
func Review(c Card, quality Quality, responseTimeMs int, now time.Time) (Card, error) {
	if !quality.IsValid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidQuality, int(quality))
	}

	next := c

	q := float64(quality)
	ef := c.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	next.EaseFactor = ef

	if quality.Passed() {
		next.Repetition = c.Repetition + 1
		switch next.Repetition {
		case 1:
			next.Interval = FirstInterval
		case 2:
			next.Interval = SecondInterval
		default:
			next.Interval = int(math.Round(float64(c.Interval) * ef))
		}
	} else {
		next.Repetition = 1
		next.Interval = FirstInterval
	}

	next.NextReviewDate = Midnight(now).AddDate(0, 0, next.Interval)
	next.LastQuality = quality

	reviewedAt := now
	next.LastReviewDate = &reviewedAt

	// Copy-on-append so the input card's history is never aliased.
	history := make([]ReviewEntry, len(c.History), len(c.History)+1)
	copy(history, c.History)
	next.History = append(history, ReviewEntry{
		Quality:        quality,
		ResponseTimeMs: responseTimeMs,
		Date:           now,
	})

	return next, nil
}
