// Package queue partitions a learner's cards into review buckets and
// orders them for presentation. Building a queue is a pure computation
// over a card snapshot and a reference day.
package queue

import (
	"sort"
	"time"

	"github.com/abhisek/learnpath/internal/sm2"
)

// Queue is the day's review work, partitioned and ordered.
type Queue struct {
	// Overdue cards, hardest (lowest ease factor) first.
	Overdue []sm2.Card `json:"overdue"`
	// Today's due cards, hardest first.
	Today []sm2.Card `json:"today"`
	// Learning cards that have never been successfully reviewed,
	// closest to graduating first.
	Learning []sm2.Card `json:"learning"`
	// TotalDue counts overdue plus today.
	TotalDue int `json:"total_due"`
}

// Build partitions cards against the given reference day. Buckets are
// mutually exclusive and evaluated in order: a card with no successful
// repetition is learning regardless of its due date; otherwise it lands in
// overdue or today by date, or is excluded entirely.
func Build(cards []sm2.Card, today time.Time) Queue {
	day := sm2.Midnight(today)

	var q Queue
	for _, c := range cards {
		switch {
		case c.Repetition == 0:
			q.Learning = append(q.Learning, c)
		case c.NextReviewDate.Before(day):
			q.Overdue = append(q.Overdue, c)
		case c.NextReviewDate.Equal(day):
			q.Today = append(q.Today, c)
		}
	}

	sortByEase(q.Overdue)
	sortByEase(q.Today)
	sort.SliceStable(q.Learning, func(i, j int) bool {
		if q.Learning[i].Repetition != q.Learning[j].Repetition {
			return q.Learning[i].Repetition > q.Learning[j].Repetition
		}
		return q.Learning[i].ItemID < q.Learning[j].ItemID
	})

	q.TotalDue = len(q.Overdue) + len(q.Today)
	return q
}

// sortByEase orders cards ascending by ease factor, hardest first.
// Item ID breaks ties so the same snapshot always yields the same order.
func sortByEase(cards []sm2.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].EaseFactor != cards[j].EaseFactor {
			return cards[i].EaseFactor < cards[j].EaseFactor
		}
		return cards[i].ItemID < cards[j].ItemID
	})
}
