package path

import (
	"testing"
	"time"

	"github.com/abhisek/learnpath/internal/policy"
)

var progNow = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

func testPath(questionCount int) *Path {
	questions := make([]string, questionCount)
	for i := range questions {
		questions[i] = "q" + string(rune('0'+i%10))
	}
	return &Path{
		ID:         "path-1",
		LearnerID:  "learner-1",
		Subjects:   []string{"fractions"},
		Difficulty: 6,
		Milestones: MilestoneLadder("fractions"),
		Questions:  questions,
		Status:     StatusActive,
		CreatedAt:  progNow,
	}
}

func TestLogCompletion_Accumulates(t *testing.T) {
	p := testPath(10)

	done := LogCompletion(p, "q1", 4, 90, progNow)

	if done {
		t.Error("one of ten completions should not finish the path")
	}
	if p.QuestionsCompleted != 1 {
		t.Errorf("QuestionsCompleted = %d, want 1", p.QuestionsCompleted)
	}
	if p.TotalTimeSpent != 90 {
		t.Errorf("TotalTimeSpent = %d, want 90", p.TotalTimeSpent)
	}
	if len(p.CompletionLog) != 1 || p.CompletionLog[0].ItemID != "q1" {
		t.Errorf("CompletionLog = %+v, want one q1 entry", p.CompletionLog)
	}
}

func TestLogCompletion_CompletesAtFullPercent(t *testing.T) {
	p := testPath(3)

	for i := 0; i < 2; i++ {
		if LogCompletion(p, "q", 5, 60, progNow) {
			t.Fatalf("completion %d finished the path early", i+1)
		}
	}
	if !LogCompletion(p, "q", 5, 60, progNow) {
		t.Fatal("final completion should finish the path")
	}
	if p.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", p.Status)
	}
}

func TestProgress_Report(t *testing.T) {
	pol := policy.Default()
	p := testPath(60)
	p.QuestionsCompleted = 30

	r := Progress(p, pol, progNow)

	if r.PercentComplete != 50 {
		t.Errorf("PercentComplete = %d, want 50", r.PercentComplete)
	}
	if r.QuestionsRemaining != 30 {
		t.Errorf("QuestionsRemaining = %d, want 30", r.QuestionsRemaining)
	}
	// 50% of a 4-stage ladder floors to index 2.
	if r.CurrentMilestone == nil || r.CurrentMilestone.TargetAccuracy != 85 {
		t.Errorf("CurrentMilestone = %+v, want the Mastery stage", r.CurrentMilestone)
	}
	if r.NextMilestone == nil || r.NextMilestone.TargetAccuracy != 90 {
		t.Errorf("NextMilestone = %+v, want the Excellence stage", r.NextMilestone)
	}
	// 30 remaining at 15/day => 2 days.
	wantDone := progNow.AddDate(0, 0, 2)
	if !r.EstimatedCompletion.Equal(wantDone) {
		t.Errorf("EstimatedCompletion = %v, want %v", r.EstimatedCompletion, wantDone)
	}
}

func TestProgress_CompletePathClampsMilestone(t *testing.T) {
	pol := policy.Default()
	p := testPath(10)
	p.QuestionsCompleted = 10

	r := Progress(p, pol, progNow)

	if r.PercentComplete != 100 {
		t.Errorf("PercentComplete = %d, want 100", r.PercentComplete)
	}
	if r.CurrentMilestone == nil || r.CurrentMilestone.TargetAccuracy != 90 {
		t.Errorf("CurrentMilestone = %+v, want last stage", r.CurrentMilestone)
	}
	if r.NextMilestone != nil {
		t.Errorf("NextMilestone = %+v, want nil at 100%%", r.NextMilestone)
	}
}

func TestComplete_ExplicitTransition(t *testing.T) {
	p := testPath(10)
	Complete(p)
	if p.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", p.Status)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	p := testPath(10)

	Pause(p)
	if p.Status != StatusPaused {
		t.Fatalf("Status = %q, want paused", p.Status)
	}

	Resume(p)
	if p.Status != StatusActive {
		t.Fatalf("Status = %q, want active after resume", p.Status)
	}

	Abandon(p)
	if p.Status != StatusAbandoned {
		t.Fatalf("Status = %q, want abandoned", p.Status)
	}

	// A completed path stays completed.
	done := testPath(10)
	Complete(done)
	Abandon(done)
	if done.Status != StatusCompleted {
		t.Errorf("Status = %q, completed paths must not be abandoned", done.Status)
	}
}
