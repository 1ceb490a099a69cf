package difficulty

import (
	"testing"

	"github.com/abhisek/learnpath/internal/policy"
)

func TestOptimal_StepFunction(t *testing.T) {
	tests := []struct {
		avgScore float64
		want     int
	}{
		{0, 3}, {49.9, 3},
		{50, 5}, {59.9, 5},
		{60, 6}, {69.9, 6},
		{70, 7}, {79.9, 7},
		{80, 8}, {89.9, 8},
		{90, 9}, {100, 9},
	}
	for _, tt := range tests {
		if got := Optimal(tt.avgScore); got != tt.want {
			t.Errorf("Optimal(%v) = %d, want %d", tt.avgScore, got, tt.want)
		}
	}
}

func TestOptimal_Monotonic(t *testing.T) {
	prev := Optimal(0)
	for score := 1.0; score <= 100; score++ {
		cur := Optimal(score)
		if cur < prev {
			t.Fatalf("Optimal(%v) = %d < Optimal(%v) = %d", score, cur, score-1, prev)
		}
		prev = cur
	}
}

func TestAdjust(t *testing.T) {
	pol := policy.Default()

	tests := []struct {
		name     string
		current  int
		accuracy float64
		samples  int
		want     int
	}{
		{"above band raises", 5, 90, 20, 6},
		{"below band lowers", 5, 50, 20, 4},
		{"inside band holds", 5, 72.5, 20, 5},
		{"band edge holds high", 5, 82.5, 20, 5},
		{"band edge holds low", 5, 62.5, 20, 5},
		{"too few samples holds", 5, 95, 10, 5},
		{"capped at max", 10, 99, 20, 10},
		{"floored at min", 1, 10, 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjust(tt.current, tt.accuracy, tt.samples, pol); got != tt.want {
				t.Errorf("Adjust(%d, %v, %d) = %d, want %d",
					tt.current, tt.accuracy, tt.samples, got, tt.want)
			}
		})
	}
}

func TestAdjust_IdempotentInsideBand(t *testing.T) {
	pol := policy.Default()
	d := 6
	for i := 0; i < 5; i++ {
		d = Adjust(d, 70, 50, pol)
	}
	if d != 6 {
		t.Errorf("difficulty drifted to %d inside the target band", d)
	}
}
