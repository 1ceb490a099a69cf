package path

import "fmt"

// Thresholds for the recommendation rules.
const (
	lowEngagementLevel  = 30.0 // engagement percent
	lowLearningRate     = 3.0  // questions per day
	regressionTrend     = -10.0
	notableStrengthMean = 85.0
)

// Recommendations emits study advice from a fixed rule set. Each rule
// contributes at most one string and the rule order never changes, so the
// output is deterministic for a given analytics snapshot.
func Recommendations(a Analytics) []string {
	var recs []string

	if a.Patterns.QuestionsAnswered > 0 && a.Patterns.EngagementLevel < lowEngagementLevel {
		recs = append(recs, "Your study activity is low. Try to answer a few questions every day to build momentum.")
	}

	if a.Patterns.QuestionsAnswered > 0 && a.Patterns.LearningRate < lowLearningRate {
		recs = append(recs, fmt.Sprintf("You are averaging %.1f questions per day. Raising that toward %d per day will speed up your progress.",
			a.Patterns.LearningRate, int(lowLearningRate)))
	}

	if len(a.Profile.Weaknesses) > 0 {
		w := a.Profile.Weaknesses[0]
		recs = append(recs, fmt.Sprintf("Focus on %s: your average there is %.0f%%.", w.Topic, w.MeanScore))
	}

	if a.Patterns.ImprovementTrend < regressionTrend {
		recs = append(recs, "Your recent scores are below your overall average. Consider revisiting fundamentals before new material.")
	}

	if len(a.Profile.Strengths) > 0 && a.Profile.Strengths[0].MeanScore >= notableStrengthMean {
		s := a.Profile.Strengths[0]
		recs = append(recs, fmt.Sprintf("%s is a clear strength at %.0f%%. Keep it sharp with occasional reviews.",
			s.Topic, s.MeanScore))
	}

	return recs
}
