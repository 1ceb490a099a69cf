package path

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/policy"
	"github.com/abhisek/learnpath/internal/predict"
)

// fallbackSubject is used when the learner has no qualified weaknesses yet.
const fallbackSubject = "general-review"

// Analytics bundles the aggregate inputs the generator works from.
type Analytics struct {
	Profile  analyzer.Profile
	Patterns analyzer.Patterns
	Forecast predict.ScoreForecast
	AvgScore float64
}

// Analyze computes path-generation analytics from the raw attempt history.
func Analyze(records []analyzer.Record, pol policy.Policy, now time.Time) Analytics {
	points := make([]predict.Point, len(records))
	sum := 0.0
	for i, r := range records {
		points[i] = predict.Point{
			Score:         r.Score,
			StudyTimeSecs: r.TimeSpentSecs,
			Date:          r.Date,
		}
		sum += r.Score
	}

	a := Analytics{
		Profile:  analyzer.StrengthsWeaknesses(records, pol),
		Patterns: analyzer.AnalyzePatterns(records, now),
		Forecast: predict.NextScore(points),
	}
	if len(records) > 0 {
		a.AvgScore = sum / float64(len(records))
	}
	return a
}

// Generate builds a learning path for the learner: weakest subjects,
// difficulty from the average score, the fixed milestone ladder, and a
// question pool drawn from the weak subjects at medium difficulty. A
// learner with no qualified weaknesses still gets a path targeting every
// topic they have touched, or a general review path if they have none.
func Generate(learnerID string, a Analytics, pool []Item, pol policy.Policy, now time.Time) Path {
	subjects := targetSubjects(a)

	p := Path{
		ID:         uuid.NewString(),
		LearnerID:  learnerID,
		Subjects:   subjects,
		Difficulty: difficulty.Optimal(a.AvgScore),
		Milestones: MilestoneLadder(subjects[0]),
		Questions:  selectQuestions(pool, subjects, pol),
		Status:     StatusActive,
		CreatedAt:  now,
	}
	return p
}

// targetSubjects orders the path's subjects weakest first. Without
// qualified weaknesses it falls back to every observed topic (weakest
// first), and finally to the general review subject.
func targetSubjects(a Analytics) []string {
	var subjects []string
	for _, w := range a.Profile.Weaknesses {
		subjects = append(subjects, w.Topic)
	}
	if len(subjects) > 0 {
		return subjects
	}

	for _, s := range a.Profile.Strengths {
		subjects = append(subjects, s.Topic)
	}
	if len(subjects) > 0 {
		return subjects
	}

	return []string{fallbackSubject}
}

// selectQuestions picks up to the policy question count from the pool,
// restricted to the target subjects and the medium difficulty band.
func selectQuestions(pool []Item, subjects []string, pol policy.Policy) []string {
	want := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		want[s] = true
	}

	var ids []string
	for _, item := range pool {
		if len(ids) >= pol.PathQuestionCount {
			break
		}
		if !want[item.Topic] {
			continue
		}
		if item.Difficulty < pol.PathMinDifficulty || item.Difficulty > pol.PathMaxDifficulty {
			continue
		}
		ids = append(ids, item.ID)
	}
	return ids
}
