// Package analyzer aggregates a learner's attempt history into per-topic
// strengths and weaknesses and overall study patterns.
package analyzer

import (
	"sort"
	"time"

	"github.com/abhisek/learnpath/internal/policy"
)

// Record is one completed question or test attempt.
type Record struct {
	Topic         string    `json:"topic"`
	BloomLevel    string    `json:"bloom_level,omitempty"`
	Score         float64   `json:"score"`
	Difficulty    int       `json:"difficulty"`
	TimeSpentSecs int       `json:"time_spent_secs"`
	Date          time.Time `json:"date"`
}

// TopicStat summarizes a learner's performance on one topic.
type TopicStat struct {
	Topic     string  `json:"topic"`
	Attempts  int     `json:"attempts"`
	MeanScore float64 `json:"mean_score"`
}

// Profile is the strengths/weaknesses breakdown for a learner.
// Both lists can legitimately be empty: topics without enough attempts
// qualify for neither.
type Profile struct {
	Strengths  []TopicStat `json:"strengths"`
	Weaknesses []TopicStat `json:"weaknesses"`
}

// StrengthsWeaknesses groups records by topic and picks out the learner's
// strongest and weakest topics. A topic is a strength when its mean score
// exceeds the strength threshold, a weakness when it falls below the
// weakness threshold; either way it needs more than the minimum attempt
// count to qualify. At most TopicListSize topics land in each list.
func StrengthsWeaknesses(records []Record, pol policy.Policy) Profile {
	stats := topicStats(records)

	var strengths, weaknesses []TopicStat
	for _, s := range stats {
		if s.Attempts <= pol.MinTopicAttempts {
			continue
		}
		switch {
		case s.MeanScore > pol.StrengthThreshold:
			strengths = append(strengths, s)
		case s.MeanScore < pol.WeaknessThreshold:
			weaknesses = append(weaknesses, s)
		}
	}

	// Strengths: best first. Weaknesses: worst first.
	sort.SliceStable(strengths, func(i, j int) bool {
		return strengths[i].MeanScore > strengths[j].MeanScore
	})
	sort.SliceStable(weaknesses, func(i, j int) bool {
		return weaknesses[i].MeanScore < weaknesses[j].MeanScore
	})

	if len(strengths) > pol.TopicListSize {
		strengths = strengths[:pol.TopicListSize]
	}
	if len(weaknesses) > pol.TopicListSize {
		weaknesses = weaknesses[:pol.TopicListSize]
	}

	return Profile{Strengths: strengths, Weaknesses: weaknesses}
}

// topicStats returns per-topic attempt counts and mean scores in a
// deterministic topic order.
func topicStats(records []Record) []TopicStat {
	type agg struct {
		count int
		sum   float64
	}
	byTopic := make(map[string]*agg)
	var order []string

	for _, r := range records {
		a, ok := byTopic[r.Topic]
		if !ok {
			a = &agg{}
			byTopic[r.Topic] = a
			order = append(order, r.Topic)
		}
		a.count++
		a.sum += r.Score
	}
	sort.Strings(order)

	stats := make([]TopicStat, 0, len(order))
	for _, topic := range order {
		a := byTopic[topic]
		stats = append(stats, TopicStat{
			Topic:     topic,
			Attempts:  a.count,
			MeanScore: a.sum / float64(a.count),
		})
	}
	return stats
}
