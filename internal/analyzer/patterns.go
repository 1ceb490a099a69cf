package analyzer

import (
	"math"
	"time"
)

// recentWindow is the number of most recent attempts used for the
// improvement trend comparison.
const recentWindow = 10

// engagementBaseline is the questions-per-day rate that maps to 100%
// engagement.
const engagementBaseline = 10.0

// Patterns summarizes a learner's study behavior over their full history.
type Patterns struct {
	QuestionsAnswered int     `json:"questions_answered"`
	DaysActive        int     `json:"days_active"`
	LearningRate      float64 `json:"learning_rate"`     // questions per day
	EngagementLevel   float64 `json:"engagement_level"`  // 0-100
	ImprovementTrend  float64 `json:"improvement_trend"` // percent vs overall
}

// AnalyzePatterns derives study-rate and trend metrics from the attempt
// history. The learning rate divides by at least one day so a first-day
// learner doesn't get an infinite rate; the improvement trend compares the
// recent-window mean against the overall mean and is 0 when there is no
// overall accuracy to compare against.
func AnalyzePatterns(records []Record, now time.Time) Patterns {
	p := Patterns{QuestionsAnswered: len(records)}
	if len(records) == 0 {
		return p
	}

	first := records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(first) {
			first = r.Date
		}
	}

	days := int(now.Sub(first).Hours() / 24)
	p.DaysActive = days
	activeDays := math.Max(float64(days), 1)

	p.LearningRate = float64(len(records)) / activeDays
	p.EngagementLevel = math.Min(100, p.LearningRate/engagementBaseline*100)

	overall := meanScore(records)
	recent := meanScore(lastN(records, recentWindow))
	if overall != 0 {
		p.ImprovementTrend = (recent - overall) / overall * 100
	}

	return p
}

func meanScore(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range records {
		sum += r.Score
	}
	return sum / float64(len(records))
}

func lastN(records []Record, n int) []Record {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
