package queue

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/learnpath/internal/policy"
	"github.com/abhisek/learnpath/internal/sm2"
)

var today = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func card(itemID string, rep int, ease float64, due time.Time) sm2.Card {
	return sm2.Card{
		LearnerID:      "learner-1",
		ItemID:         itemID,
		EaseFactor:     ease,
		Interval:       1,
		Repetition:     rep,
		NextReviewDate: sm2.Midnight(due),
	}
}

func itemIDs(cards []sm2.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ItemID
	}
	return ids
}

func TestBuild_Partition(t *testing.T) {
	cards := []sm2.Card{
		card("overdue-1", 3, 2.5, today.AddDate(0, 0, -2)),
		card("due-today", 2, 2.5, today),
		card("learning-1", 0, 2.5, today.AddDate(0, 0, -5)), // learning wins over overdue
		card("future-1", 4, 2.5, today.AddDate(0, 0, 3)),
	}

	q := Build(cards, today)

	if got := itemIDs(q.Overdue); !reflect.DeepEqual(got, []string{"overdue-1"}) {
		t.Errorf("Overdue = %v", got)
	}
	if got := itemIDs(q.Today); !reflect.DeepEqual(got, []string{"due-today"}) {
		t.Errorf("Today = %v", got)
	}
	if got := itemIDs(q.Learning); !reflect.DeepEqual(got, []string{"learning-1"}) {
		t.Errorf("Learning = %v", got)
	}
	if q.TotalDue != 2 {
		t.Errorf("TotalDue = %d, want 2", q.TotalDue)
	}
}

func TestBuild_OrdersDueByEaseAscending(t *testing.T) {
	cards := []sm2.Card{
		card("easy", 3, 2.8, today.AddDate(0, 0, -1)),
		card("hard", 3, 1.4, today.AddDate(0, 0, -1)),
		card("medium", 3, 2.1, today.AddDate(0, 0, -1)),
	}

	q := Build(cards, today)

	want := []string{"hard", "medium", "easy"}
	if got := itemIDs(q.Overdue); !reflect.DeepEqual(got, want) {
		t.Errorf("Overdue order = %v, want %v", got, want)
	}
}

func TestBuild_OrdersLearningByRepetitionDescending(t *testing.T) {
	cards := []sm2.Card{
		card("a", 0, 2.5, today),
		card("b", 0, 2.5, today),
	}
	// Repetition is zero for all learning cards by definition of the bucket;
	// ties fall back to item ID for a stable order.
	q := Build(cards, today)
	want := []string{"a", "b"}
	if got := itemIDs(q.Learning); !reflect.DeepEqual(got, want) {
		t.Errorf("Learning order = %v, want %v", got, want)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	cards := []sm2.Card{
		card("x", 3, 1.9, today.AddDate(0, 0, -3)),
		card("y", 0, 2.5, today),
		card("z", 1, 2.2, today),
	}

	first := Build(cards, today)
	second := Build(cards, today)

	if !reflect.DeepEqual(first, second) {
		t.Error("rebuilding the queue on an unchanged snapshot changed the output")
	}
}

func TestBuild_EmptySnapshot(t *testing.T) {
	q := Build(nil, today)
	if q.TotalDue != 0 {
		t.Errorf("TotalDue = %d, want 0", q.TotalDue)
	}
	if len(q.Overdue)+len(q.Today)+len(q.Learning) != 0 {
		t.Error("expected empty buckets")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want Priority
	}{
		{"yesterday", today.AddDate(0, 0, -1), PriorityOverdue},
		{"today", today, PriorityToday},
		{"tomorrow", today.AddDate(0, 0, 1), PriorityTomorrow},
		{"next week", today.AddDate(0, 0, 7), PriorityFuture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := card("item", 1, 2.5, tt.due)
			if got := Classify(c, today); got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecommendDailyLoad(t *testing.T) {
	pol := policy.Default()

	tests := []struct {
		name        string
		cardCount   int
		maturePct   float64
		wantNew     int
		wantReview  int
		wantMinutes float64
	}{
		{"small fresh deck", 10, 0, 10, 0, 15},
		{"large fresh deck caps new", 200, 0, 20, 0, 30},
		{"mostly mature caps reviews", 100, 0.9, 10, 30, 30},
		{"empty deck", 0, 0.5, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load := RecommendDailyLoad(tt.cardCount, tt.maturePct, pol)
			if load.NewCards != tt.wantNew {
				t.Errorf("NewCards = %d, want %d", load.NewCards, tt.wantNew)
			}
			if load.ReviewCards != tt.wantReview {
				t.Errorf("ReviewCards = %d, want %d", load.ReviewCards, tt.wantReview)
			}
			if load.EstimatedMinutes != tt.wantMinutes {
				t.Errorf("EstimatedMinutes = %v, want %v", load.EstimatedMinutes, tt.wantMinutes)
			}
		})
	}
}
