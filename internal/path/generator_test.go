package path

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/policy"
)

var genNow = time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

func weakRecords(topic string, n int, score float64) []analyzer.Record {
	records := make([]analyzer.Record, n)
	for i := range records {
		records[i] = analyzer.Record{
			Topic:      topic,
			Score:      score,
			Difficulty: 5,
			Date:       genNow.AddDate(0, 0, -n+i),
		}
	}
	return records
}

func poolFor(topic string) []Item {
	items := make([]Item, 0, 20)
	for i := 0; i < 10; i++ {
		items = append(items, Item{ID: topic + "-med-" + string(rune('a'+i)), Topic: topic, Difficulty: 6})
	}
	for i := 0; i < 5; i++ {
		items = append(items, Item{ID: topic + "-easy-" + string(rune('a'+i)), Topic: topic, Difficulty: 2})
	}
	for i := 0; i < 5; i++ {
		items = append(items, Item{ID: "other-" + string(rune('a'+i)), Topic: "other", Difficulty: 6})
	}
	return items
}

func TestGenerate_WeakSubjectDrivesPath(t *testing.T) {
	pol := policy.Default()
	records := append(weakRecords("fractions", 8, 40), weakRecords("algebra", 8, 90)...)

	a := Analyze(records, pol, genNow)
	p := Generate("learner-1", a, poolFor("fractions"), pol, genNow)

	if len(p.Subjects) == 0 || p.Subjects[0] != "fractions" {
		t.Fatalf("Subjects = %v, want fractions first", p.Subjects)
	}
	if p.Status != StatusActive {
		t.Errorf("Status = %q, want active", p.Status)
	}
	if p.ID == "" {
		t.Error("expected a generated path ID")
	}
	if len(p.Milestones) != 4 {
		t.Fatalf("len(Milestones) = %d, want 4", len(p.Milestones))
	}
	if !strings.Contains(p.Milestones[0].Name, "fractions") {
		t.Errorf("first milestone %q not keyed to weakest subject", p.Milestones[0].Name)
	}
}

func TestGenerate_MilestoneLadderShape(t *testing.T) {
	ladder := MilestoneLadder("geometry")

	wantAccuracy := []int{65, 75, 85, 90}
	wantQuota := []int{50, 100, 150, 200}
	for i, m := range ladder {
		if m.TargetAccuracy != wantAccuracy[i] {
			t.Errorf("stage %d: TargetAccuracy = %d, want %d", i, m.TargetAccuracy, wantAccuracy[i])
		}
		if m.QuestionQuota != wantQuota[i] {
			t.Errorf("stage %d: QuestionQuota = %d, want %d", i, m.QuestionQuota, wantQuota[i])
		}
	}
}

func TestGenerate_QuestionSelection(t *testing.T) {
	pol := policy.Default()
	records := weakRecords("fractions", 8, 40)

	a := Analyze(records, pol, genNow)
	p := Generate("learner-1", a, poolFor("fractions"), pol, genNow)

	if len(p.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10 medium fractions items", len(p.Questions))
	}
	for _, id := range p.Questions {
		if !strings.HasPrefix(id, "fractions-med-") {
			t.Errorf("selected %q, want only medium-difficulty weak-subject items", id)
		}
	}
}

func TestGenerate_EmptyHistoryFallsBack(t *testing.T) {
	pol := policy.Default()

	a := Analyze(nil, pol, genNow)
	p := Generate("learner-1", a, nil, pol, genNow)

	if len(p.Subjects) != 1 || p.Subjects[0] != fallbackSubject {
		t.Errorf("Subjects = %v, want fallback", p.Subjects)
	}
	if len(p.Milestones) != 4 {
		t.Errorf("len(Milestones) = %d, want 4", len(p.Milestones))
	}
	if p.Difficulty < 1 || p.Difficulty > 10 {
		t.Errorf("Difficulty = %d, out of range", p.Difficulty)
	}
}

func TestRecommendations_RuleOrder(t *testing.T) {
	pol := policy.Default()

	// Weak learner: low volume, one dominant weakness, regressing.
	var records []analyzer.Record
	records = append(records, weakRecords("fractions", 10, 80)...)
	recent := weakRecords("fractions", 2, 20)
	for i := range recent {
		recent[i].Date = genNow.AddDate(0, 0, -2+i)
	}
	records = append(records, recent...)

	a := Analyze(records, pol, genNow)
	recs := Recommendations(a)

	if len(recs) == 0 {
		t.Fatal("expected recommendations for a struggling learner")
	}

	// Same analytics must yield the same strings in the same order.
	again := Recommendations(a)
	if len(again) != len(recs) {
		t.Fatalf("recommendation count changed between runs: %d vs %d", len(recs), len(again))
	}
	for i := range recs {
		if recs[i] != again[i] {
			t.Errorf("rec %d changed between runs", i)
		}
	}
}

func TestRecommendations_EmptyHistory(t *testing.T) {
	a := Analyze(nil, policy.Default(), genNow)
	if recs := Recommendations(a); len(recs) != 0 {
		t.Errorf("Recommendations = %v, want none for empty history", recs)
	}
}
