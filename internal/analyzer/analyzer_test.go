package analyzer

import (
	"testing"
	"time"

	"github.com/abhisek/learnpath/internal/policy"
)

var day0 = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

// attempts builds n records for a topic with the given constant score,
// one per day starting at day0.
func attempts(topic string, n int, score float64) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Topic:      topic,
			Score:      score,
			Difficulty: 5,
			Date:       day0.AddDate(0, 0, i),
		}
	}
	return records
}

func TestStrengthsWeaknesses_Classification(t *testing.T) {
	pol := policy.Default()

	var records []Record
	records = append(records, attempts("algebra", 8, 90)...)  // strength
	records = append(records, attempts("geometry", 8, 40)...) // weakness
	records = append(records, attempts("calculus", 8, 65)...) // neither
	records = append(records, attempts("trig", 3, 20)...)     // too few attempts

	profile := StrengthsWeaknesses(records, pol)

	if len(profile.Strengths) != 1 || profile.Strengths[0].Topic != "algebra" {
		t.Errorf("Strengths = %+v, want [algebra]", profile.Strengths)
	}
	if len(profile.Weaknesses) != 1 || profile.Weaknesses[0].Topic != "geometry" {
		t.Errorf("Weaknesses = %+v, want [geometry]", profile.Weaknesses)
	}
}

func TestStrengthsWeaknesses_Disjoint(t *testing.T) {
	pol := policy.Default()

	var records []Record
	for i, topic := range []string{"a", "b", "c", "d", "e"} {
		records = append(records, attempts(topic, 10, float64(20+i*18))...)
	}

	profile := StrengthsWeaknesses(records, pol)

	seen := make(map[string]bool)
	for _, s := range profile.Strengths {
		seen[s.Topic] = true
	}
	for _, w := range profile.Weaknesses {
		if seen[w.Topic] {
			t.Errorf("topic %q appears in both strengths and weaknesses", w.Topic)
		}
	}
}

func TestStrengthsWeaknesses_TopThreeOnly(t *testing.T) {
	pol := policy.Default()

	var records []Record
	for _, tc := range []struct {
		topic string
		score float64
	}{
		{"w1", 10}, {"w2", 20}, {"w3", 30}, {"w4", 40}, {"w5", 50},
	} {
		records = append(records, attempts(tc.topic, 10, tc.score)...)
	}

	profile := StrengthsWeaknesses(records, pol)

	if len(profile.Weaknesses) != 3 {
		t.Fatalf("len(Weaknesses) = %d, want 3", len(profile.Weaknesses))
	}
	// Worst first.
	for i, want := range []string{"w1", "w2", "w3"} {
		if profile.Weaknesses[i].Topic != want {
			t.Errorf("Weaknesses[%d] = %q, want %q", i, profile.Weaknesses[i].Topic, want)
		}
	}
}

func TestStrengthsWeaknesses_EmptyHistory(t *testing.T) {
	profile := StrengthsWeaknesses(nil, policy.Default())
	if len(profile.Strengths) != 0 || len(profile.Weaknesses) != 0 {
		t.Errorf("profile = %+v, want empty lists", profile)
	}
}

func TestAnalyzePatterns_RatesAndEngagement(t *testing.T) {
	// 20 questions over 10 days => 2/day => 20% engagement.
	records := attempts("algebra", 20, 70)
	now := day0.AddDate(0, 0, 10)

	p := AnalyzePatterns(records, now)

	if p.QuestionsAnswered != 20 {
		t.Errorf("QuestionsAnswered = %d, want 20", p.QuestionsAnswered)
	}
	if p.LearningRate != 2 {
		t.Errorf("LearningRate = %v, want 2", p.LearningRate)
	}
	if p.EngagementLevel != 20 {
		t.Errorf("EngagementLevel = %v, want 20", p.EngagementLevel)
	}
}

func TestAnalyzePatterns_EngagementCappedAt100(t *testing.T) {
	// 30 questions on day one => rate well above the 10/day baseline.
	records := make([]Record, 30)
	for i := range records {
		records[i] = Record{Topic: "t", Score: 50, Date: day0}
	}

	p := AnalyzePatterns(records, day0.Add(2*time.Hour))

	if p.EngagementLevel != 100 {
		t.Errorf("EngagementLevel = %v, want 100", p.EngagementLevel)
	}
}

func TestAnalyzePatterns_ImprovementTrend(t *testing.T) {
	// 10 old attempts at 50, then 10 recent at 80.
	// Overall mean 65, recent mean 80 => trend ~ +23.08%.
	var records []Record
	records = append(records, attempts("t", 10, 50)...)
	later := attempts("t", 10, 80)
	for i := range later {
		later[i].Date = day0.AddDate(0, 0, 10+i)
	}
	records = append(records, later...)

	p := AnalyzePatterns(records, day0.AddDate(0, 0, 20))

	want := (80.0 - 65.0) / 65.0 * 100
	if diff := p.ImprovementTrend - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ImprovementTrend = %v, want %v", p.ImprovementTrend, want)
	}
}

func TestAnalyzePatterns_ZeroOverallAccuracy(t *testing.T) {
	records := attempts("t", 12, 0)
	p := AnalyzePatterns(records, day0.AddDate(0, 0, 12))
	if p.ImprovementTrend != 0 {
		t.Errorf("ImprovementTrend = %v, want 0 (division guard)", p.ImprovementTrend)
	}
}

func TestAnalyzePatterns_EmptyHistory(t *testing.T) {
	p := AnalyzePatterns(nil, day0)
	if p != (Patterns{}) {
		t.Errorf("patterns = %+v, want zero value", p)
	}
}
