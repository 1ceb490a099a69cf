// Package difficulty maps rolling accuracy onto a 1-10 difficulty level.
package difficulty

import "github.com/abhisek/learnpath/internal/policy"

// Bounds of the difficulty scale.
const (
	Min = 1
	Max = 10
)

// Optimal maps an average score to a starting difficulty. The mapping is a
// monotonic step function over accuracy bands.
func Optimal(avgScore float64) int {
	switch {
	case avgScore < 50:
		return 3
	case avgScore < 60:
		return 5
	case avgScore < 70:
		return 6
	case avgScore < 80:
		return 7
	case avgScore < 90:
		return 8
	default:
		return 9
	}
}

// Adjust nudges the current difficulty toward the target accuracy band.
// It moves only when the sample count clears the policy minimum: accuracy
// above the band raises difficulty, below lowers it, and anything inside
// the band leaves it unchanged, so repeated calls with in-band accuracy
// are idempotent. The result always stays within [Min, Max].
func Adjust(current int, accuracy float64, sampleCount int, pol policy.Policy) int {
	next := clamp(current)
	if sampleCount <= pol.MinAdjustSamples {
		return next
	}

	upper := pol.TargetAccuracy + pol.AccuracyBand
	lower := pol.TargetAccuracy - pol.AccuracyBand

	switch {
	case accuracy > upper:
		next++
	case accuracy < lower:
		next--
	}
	return clamp(next)
}

func clamp(d int) int {
	if d < Min {
		return Min
	}
	if d > Max {
		return Max
	}
	return d
}
