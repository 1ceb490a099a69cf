// Package predict projects future scores from a learner's score history.
// Every function fails soft: with fewer than MinHistory points it returns
// a zero-valued result rather than an error, so callers can always render
// something.
package predict

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// MinHistory is the minimum number of points any projection needs.
const MinHistory = 2

// recentWindow bounds how many recent scores feed the short-term forecast.
const recentWindow = 10

// maxHorizonDays bounds how far out a target projection is considered
// achievable.
const maxHorizonDays = 365

// Point is one observation in a learner's score time series.
type Point struct {
	Score         float64   `json:"score"`
	StudyTimeSecs int       `json:"study_time_secs"`
	Date          time.Time `json:"date"`
}

// ScoreForecast is a short-term projection of the learner's next score.
type ScoreForecast struct {
	PredictedScore int `json:"predicted_score"`
	Confidence     int `json:"confidence"` // 30-95, or 0 when insufficient
	SampleSize     int `json:"sample_size"`
}

// NextScore projects the next score by extrapolating the recent trend on
// top of the recent average. Confidence shrinks with the spread of recent
// scores and is clamped to [30, 95].
func NextScore(history []Point) ScoreForecast {
	if len(history) < MinHistory {
		return ScoreForecast{}
	}

	recent := scores(lastN(history, recentWindow))
	avg := stat.Mean(recent, nil)
	trend := (recent[len(recent)-1] - recent[0]) / float64(len(recent))

	predicted := clampInt(int(math.Round(avg+trend*5)), 0, 100)
	confidence := clampInt(int(math.Round(100-stat.StdDev(recent, nil))), 30, 95)

	return ScoreForecast{
		PredictedScore: predicted,
		Confidence:     confidence,
		SampleSize:     len(recent),
	}
}

// CeilingEstimate is a heuristic upper bound on achievable scores.
type CeilingEstimate struct {
	Ceiling    int `json:"ceiling"`
	Confidence int `json:"confidence"`
}

// Ceiling estimates the score ceiling from the upper end of the observed
// distribution: the 90th percentile plus a small headroom, never below the
// best observed score. Confidence grows with sample size.
func Ceiling(history []Point) CeilingEstimate {
	if len(history) < MinHistory {
		return CeilingEstimate{}
	}

	sorted := scores(history)
	sort.Float64s(sorted)

	p90 := stat.Quantile(0.9, stat.Empirical, sorted, nil)
	best := sorted[len(sorted)-1]

	ceiling := math.Round(p90 + 5)
	if ceiling < best {
		ceiling = best
	}
	if ceiling > 100 {
		ceiling = 100
	}

	return CeilingEstimate{
		Ceiling:    int(ceiling),
		Confidence: clampInt(40+3*len(history), 30, 90),
	}
}

// TargetForecast is a projection of when a target score will be reached.
type TargetForecast struct {
	TargetScore  float64 `json:"target_score"`
	DaysToTarget int     `json:"days_to_target"`
	Achievable   bool    `json:"achievable"`
}

// TimeToTarget linearly extrapolates the score trend to the target. A flat
// or declining trend toward a higher target is unachievable, as is any
// projection beyond the horizon.
func TimeToTarget(history []Point, target float64) TargetForecast {
	f := TargetForecast{TargetScore: target}
	if len(history) < MinHistory {
		return f
	}

	first := history[0].Date
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, p := range history {
		xs[i] = p.Date.Sub(first).Hours() / 24
		ys[i] = p.Score
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	lastX := xs[len(xs)-1]
	current := alpha + beta*lastX

	if current >= target {
		f.Achievable = true
		return f
	}
	// beta <= 0 also catches NaN from a degenerate (single-day) series.
	if !(beta > 0) {
		return f
	}

	days := (target - current) / beta
	if days > maxHorizonDays {
		return f
	}

	f.Achievable = true
	f.DaysToTarget = int(math.Ceil(days))
	return f
}

// StudyTimeROI returns the score gained per hour of study across the
// history, or 0 when no study time was recorded.
func StudyTimeROI(history []Point) float64 {
	if len(history) < MinHistory {
		return 0
	}

	totalSecs := 0
	for _, p := range history {
		totalSecs += p.StudyTimeSecs
	}
	if totalSecs == 0 {
		return 0
	}

	delta := history[len(history)-1].Score - history[0].Score
	return delta / (float64(totalSecs) / 3600)
}

// OptimalFrequency recommends how many exams per week to take, in [1, 5].
// Slow or negative velocity calls for more frequent testing; fast gains
// need less. Returns 0 with insufficient history.
func OptimalFrequency(history []Point) int {
	if len(history) < MinHistory {
		return 0
	}

	velocity := (history[len(history)-1].Score - history[0].Score) / float64(len(history)-1)

	switch {
	case velocity < 0:
		return 5
	case velocity < 0.5:
		return 4
	case velocity < 1.5:
		return 3
	case velocity < 3:
		return 2
	default:
		return 1
	}
}

func scores(points []Point) []float64 {
	s := make([]float64, len(points))
	for i, p := range points {
		s[i] = p.Score
	}
	return s
}

func lastN(points []Point, n int) []Point {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
