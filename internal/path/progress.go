package path

import (
	"math"
	"time"

	"github.com/abhisek/learnpath/internal/policy"
)

// Report is a snapshot of how far along a path the learner is.
type Report struct {
	PercentComplete    int        `json:"percent_complete"`
	CurrentMilestone   *Milestone `json:"current_milestone,omitempty"`
	NextMilestone      *Milestone `json:"next_milestone,omitempty"`
	QuestionsCompleted int        `json:"questions_completed"`
	QuestionsRemaining int        `json:"questions_remaining"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

// LogCompletion records one completed question against the path: the
// counter and time totals advance and the completion log grows. The path
// transitions to completed when the rounded completion percentage reaches
// 100. Returns true when this completion finished the path.
func LogCompletion(p *Path, itemID string, quality, timeSpent int, now time.Time) bool {
	p.QuestionsCompleted++
	p.TotalTimeSpent += timeSpent
	p.CompletionLog = append(p.CompletionLog, Completion{
		ItemID:    itemID,
		Quality:   quality,
		TimeSpent: timeSpent,
		Timestamp: now,
	})

	if p.Status == StatusActive && PercentComplete(p) >= 100 {
		p.Status = StatusCompleted
		return true
	}
	return false
}

// PercentComplete is the rounded completion percentage. A path with no
// questions counts as fully complete.
func PercentComplete(p *Path) int {
	total := len(p.Questions)
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(p.QuestionsCompleted) / float64(total) * 100))
}

// Progress derives the learner's position on the path. The milestone index
// maps the completion percentage proportionally onto the ladder, and the
// estimated completion date assumes the policy's fixed questions-per-day
// pace.
func Progress(p *Path, pol policy.Policy, now time.Time) Report {
	percent := PercentComplete(p)
	remaining := len(p.Questions) - p.QuestionsCompleted
	if remaining < 0 {
		remaining = 0
	}

	r := Report{
		PercentComplete:    percent,
		QuestionsCompleted: p.QuestionsCompleted,
		QuestionsRemaining: remaining,
	}

	if n := len(p.Milestones); n > 0 {
		idx := int(math.Floor(float64(percent) / 100 * float64(n)))
		if idx >= n {
			idx = n - 1
		}
		r.CurrentMilestone = &p.Milestones[idx]
		if idx+1 < n {
			r.NextMilestone = &p.Milestones[idx+1]
		}
	}

	days := int(math.Ceil(float64(remaining) / float64(pol.QuestionsPerDay)))
	r.EstimatedCompletion = now.AddDate(0, 0, days)

	return r
}

// Complete explicitly finishes the path, independent of the percentage
// check. Used by external workflows. No-op counts as success on an already
// completed path.
func Complete(p *Path) {
	p.Status = StatusCompleted
}

// Pause and Abandon are external lifecycle transitions stored on the path.
func Pause(p *Path) {
	if p.Status == StatusActive {
		p.Status = StatusPaused
	}
}

// Resume reactivates a paused path.
func Resume(p *Path) {
	if p.Status == StatusPaused {
		p.Status = StatusActive
	}
}

// Abandon marks the path abandoned unless it already completed.
func Abandon(p *Path) {
	if p.Status != StatusCompleted {
		p.Status = StatusAbandoned
	}
}
