package predict

import (
	"testing"
	"time"
)

var start = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

// series builds evenly spaced daily points with the given scores.
func series(scores ...float64) []Point {
	points := make([]Point, len(scores))
	for i, s := range scores {
		points[i] = Point{
			Score:         s,
			StudyTimeSecs: 1800,
			Date:          start.AddDate(0, 0, i),
		}
	}
	return points
}

func TestNextScore_InsufficientData(t *testing.T) {
	for _, history := range [][]Point{nil, {}, series(75)} {
		f := NextScore(history)
		if f.PredictedScore != 0 || f.Confidence != 0 {
			t.Errorf("NextScore(%d points) = %+v, want zero forecast", len(history), f)
		}
	}
}

func TestNextScore_PositiveTrend(t *testing.T) {
	// Rising 50..80: prediction must extrapolate above the last score.
	f := NextScore(series(50, 60, 70, 80))

	if f.PredictedScore <= 80 || f.PredictedScore > 100 {
		t.Errorf("PredictedScore = %d, want in (80, 100]", f.PredictedScore)
	}
	if f.Confidence < 30 || f.Confidence > 95 {
		t.Errorf("Confidence = %d, want in [30, 95]", f.Confidence)
	}
	if f.SampleSize != 4 {
		t.Errorf("SampleSize = %d, want 4", f.SampleSize)
	}
}

func TestNextScore_FlatSeriesHighConfidence(t *testing.T) {
	f := NextScore(series(70, 70, 70, 70, 70))

	if f.PredictedScore != 70 {
		t.Errorf("PredictedScore = %d, want 70", f.PredictedScore)
	}
	if f.Confidence != 95 {
		t.Errorf("Confidence = %d, want 95 (zero spread caps at 95)", f.Confidence)
	}
}

func TestNextScore_UsesRecentWindowOnly(t *testing.T) {
	// Ten old zeros must not drag down a forecast built on ten recent 80s.
	history := series(0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		80, 80, 80, 80, 80, 80, 80, 80, 80, 80)

	f := NextScore(history)

	if f.SampleSize != 10 {
		t.Errorf("SampleSize = %d, want 10", f.SampleSize)
	}
	if f.PredictedScore != 80 {
		t.Errorf("PredictedScore = %d, want 80", f.PredictedScore)
	}
}

func TestNextScore_ClampsToHundred(t *testing.T) {
	f := NextScore(series(90, 95, 99, 100))
	if f.PredictedScore > 100 {
		t.Errorf("PredictedScore = %d, want <= 100", f.PredictedScore)
	}
}

func TestCeiling(t *testing.T) {
	est := Ceiling(series(60, 65, 70, 75, 80))

	if est.Ceiling < 80 || est.Ceiling > 100 {
		t.Errorf("Ceiling = %d, want in [80, 100]", est.Ceiling)
	}
	if est.Confidence < 30 || est.Confidence > 90 {
		t.Errorf("Confidence = %d, want in [30, 90]", est.Confidence)
	}

	if got := Ceiling(nil); got != (CeilingEstimate{}) {
		t.Errorf("Ceiling(nil) = %+v, want zero value", got)
	}
}

func TestTimeToTarget_RisingTrend(t *testing.T) {
	f := TimeToTarget(series(50, 55, 60, 65), 80)

	if !f.Achievable {
		t.Fatal("rising trend toward target should be achievable")
	}
	// Gaining 5 points/day from 65 needs 3 days.
	if f.DaysToTarget != 3 {
		t.Errorf("DaysToTarget = %d, want 3", f.DaysToTarget)
	}
}

func TestTimeToTarget_AlreadyReached(t *testing.T) {
	f := TimeToTarget(series(85, 88, 90), 80)
	if !f.Achievable || f.DaysToTarget != 0 {
		t.Errorf("forecast = %+v, want achievable now", f)
	}
}

func TestTimeToTarget_DecliningTrendUnachievable(t *testing.T) {
	f := TimeToTarget(series(80, 70, 60, 50), 90)
	if f.Achievable {
		t.Error("declining trend toward a higher target must be unachievable")
	}
}

func TestTimeToTarget_FlatTrendUnachievable(t *testing.T) {
	f := TimeToTarget(series(60, 60, 60, 60), 90)
	if f.Achievable {
		t.Error("flat trend toward a higher target must be unachievable")
	}
}

func TestTimeToTarget_BeyondHorizonUnachievable(t *testing.T) {
	// ~0.01 points/day toward a target 30 points away.
	points := series(60, 60)
	points[1].Score = 60.01
	f := TimeToTarget(points, 90)
	if f.Achievable {
		t.Error("projection past the horizon must be unachievable")
	}
}

func TestStudyTimeROI(t *testing.T) {
	// +30 points over 4 * 0.5h = 2h => 15 points/hour.
	roi := StudyTimeROI(series(50, 60, 70, 80))
	if roi != 15 {
		t.Errorf("ROI = %v, want 15", roi)
	}
}

func TestStudyTimeROI_ZeroStudyTime(t *testing.T) {
	points := series(50, 80)
	for i := range points {
		points[i].StudyTimeSecs = 0
	}
	if roi := StudyTimeROI(points); roi != 0 {
		t.Errorf("ROI = %v, want 0 when no study time recorded", roi)
	}
}

func TestOptimalFrequency(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{"declining", []float64{80, 70, 60}, 5},
		{"flat", []float64{70, 70, 70}, 4},
		{"slow gain", []float64{70, 71, 72}, 3},
		{"steady gain", []float64{60, 62, 64}, 2},
		{"fast gain", []float64{50, 60, 70}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptimalFrequency(series(tt.scores...)); got != tt.want {
				t.Errorf("OptimalFrequency = %d, want %d", got, tt.want)
			}
		})
	}

	if got := OptimalFrequency(series(70)); got != 0 {
		t.Errorf("OptimalFrequency(1 point) = %d, want 0", got)
	}
}
