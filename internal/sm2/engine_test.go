package sm2

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestCard(t *testing.T) Card {
	t.Helper()
	return Initialize("learner-1", "item-1", testNow)
}

func mustReview(t *testing.T, c Card, q Quality) Card {
	t.Helper()
	next, err := Review(c, q, 1200, testNow)
	if err != nil {
		t.Fatalf("review quality %d: %v", q, err)
	}
	return next
}

func TestInitialize_Defaults(t *testing.T) {
	c := newTestCard(t)

	if c.EaseFactor != InitialEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", c.EaseFactor, InitialEaseFactor)
	}
	if c.Interval != 1 {
		t.Errorf("Interval = %d, want 1", c.Interval)
	}
	if c.Repetition != 0 {
		t.Errorf("Repetition = %d, want 0", c.Repetition)
	}
	wantNext := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !c.NextReviewDate.Equal(wantNext) {
		t.Errorf("NextReviewDate = %v, want %v", c.NextReviewDate, wantNext)
	}
}

func TestReview_InvalidQuality(t *testing.T) {
	c := newTestCard(t)
	for _, q := range []Quality{-1, 6, 42} {
		_, err := Review(c, q, 0, testNow)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: err = %v, want ErrInvalidQuality", q, err)
		}
	}
}

func TestReview_FirstPerfectAnswer(t *testing.T) {
	// Scenario: fresh card, quality 5.
	c := mustReview(t, newTestCard(t), QualityPerfect)

	if math.Abs(c.EaseFactor-2.6) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.6", c.EaseFactor)
	}
	if c.Interval != 1 {
		t.Errorf("Interval = %d, want 1", c.Interval)
	}
	if c.Repetition != 1 {
		t.Errorf("Repetition = %d, want 1", c.Repetition)
	}
	wantNext := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !c.NextReviewDate.Equal(wantNext) {
		t.Errorf("NextReviewDate = %v, want %v", c.NextReviewDate, wantNext)
	}
}

func TestReview_SecondPerfectAnswer(t *testing.T) {
	c := mustReview(t, newTestCard(t), QualityPerfect)
	c = mustReview(t, c, QualityPerfect)

	if c.Repetition != 2 {
		t.Errorf("Repetition = %d, want 2", c.Repetition)
	}
	if c.Interval != SecondInterval {
		t.Errorf("Interval = %d, want %d", c.Interval, SecondInterval)
	}
}

func TestReview_FailureResetsRepetition(t *testing.T) {
	c := mustReview(t, newTestCard(t), QualityPerfect)
	c = mustReview(t, c, QualityPerfect)
	efBefore := c.EaseFactor

	c = mustReview(t, c, QualityIncorrectFamiliar)

	if c.Repetition != 1 {
		t.Errorf("Repetition = %d, want 1", c.Repetition)
	}
	if c.Interval != 1 {
		t.Errorf("Interval = %d, want 1", c.Interval)
	}
	if c.EaseFactor >= efBefore {
		t.Errorf("EaseFactor = %v, want below %v", c.EaseFactor, efBefore)
	}
	if c.EaseFactor < MinEaseFactor {
		t.Errorf("EaseFactor = %v, below floor %v", c.EaseFactor, MinEaseFactor)
	}
}

func TestReview_IntervalLadder(t *testing.T) {
	// Repeated perfect answers follow 1, 3, round(3*EF), ...
	c := newTestCard(t)
	wantIntervals := []int{1, 3}
	for i, want := range wantIntervals {
		c = mustReview(t, c, QualityPerfect)
		if c.Interval != want {
			t.Fatalf("review %d: Interval = %d, want %d", i+1, c.Interval, want)
		}
	}

	// Third success: round(interval * EF') with EF' = 2.8.
	c = mustReview(t, c, QualityPerfect)
	want := int(math.Round(3 * 2.8))
	if c.Interval != want {
		t.Errorf("third success: Interval = %d, want %d", c.Interval, want)
	}
}

func TestReview_EaseFactorFloor(t *testing.T) {
	// Any quality sequence keeps EF at or above the floor.
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		c := newTestCard(t)
		for i := 0; i < 20; i++ {
			c = mustReview(t, c, q)
			if c.EaseFactor < MinEaseFactor {
				t.Fatalf("quality %d, review %d: EaseFactor = %v, below %v",
					q, i+1, c.EaseFactor, MinEaseFactor)
			}
		}
	}
}

func TestReview_AppendsHistoryWithoutMutatingInput(t *testing.T) {
	orig := newTestCard(t)
	next := mustReview(t, orig, QualityCorrectHesitation)

	if len(orig.History) != 0 {
		t.Errorf("input history length = %d, want 0", len(orig.History))
	}
	if orig.Repetition != 0 || orig.EaseFactor != InitialEaseFactor {
		t.Error("input card was mutated")
	}

	if len(next.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(next.History))
	}
	entry := next.History[0]
	if entry.Quality != QualityCorrectHesitation {
		t.Errorf("history quality = %d, want %d", entry.Quality, QualityCorrectHesitation)
	}
	if entry.ResponseTimeMs != 1200 {
		t.Errorf("history response time = %d, want 1200", entry.ResponseTimeMs)
	}
	if next.LastReviewDate == nil || !next.LastReviewDate.Equal(testNow) {
		t.Errorf("LastReviewDate = %v, want %v", next.LastReviewDate, testNow)
	}
}

func TestIsMature(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"fresh card", Card{}, false},
		{"enough reps, short interval", Card{Repetition: 6, LastQuality: 5, Interval: 7}, false},
		{"long interval, weak recall", Card{Repetition: 6, LastQuality: 3, Interval: 45}, false},
		{"mature", Card{Repetition: 5, LastQuality: 4, Interval: 30}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.IsMature(); got != tt.want {
				t.Errorf("IsMature() = %v, want %v", got, tt.want)
			}
		})
	}
}
