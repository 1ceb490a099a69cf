package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/learnpath/ent/attemptevent"
	"github.com/abhisek/learnpath/ent/completionevent"
	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/sm2"
)

var storeNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCardRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)

	card, err := s.CardRepo().Get(context.Background(), "learner-1", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if card != nil {
		t.Errorf("card = %+v, want nil for unseen item", card)
	}
}

func TestCardRepo_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	last := storeNow.AddDate(0, 0, -3)
	in := sm2.Card{
		LearnerID:      "learner-1",
		ItemID:         "item-1",
		EaseFactor:     2.6,
		Interval:       3,
		Repetition:     2,
		LastQuality:    sm2.QualityPerfect,
		NextReviewDate: sm2.Midnight(storeNow),
		LastReviewDate: &last,
		History: []sm2.ReviewEntry{
			{Quality: sm2.QualityCorrectHesitation, ResponseTimeMs: 1200, Date: last.AddDate(0, 0, -1)},
			{Quality: sm2.QualityPerfect, ResponseTimeMs: 800, Date: last},
		},
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "learner-1", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("get returned nil after put")
	}
	if out.EaseFactor != in.EaseFactor || out.Interval != in.Interval || out.Repetition != in.Repetition {
		t.Errorf("state = EF %v interval %d rep %d, want EF %v interval %d rep %d",
			out.EaseFactor, out.Interval, out.Repetition,
			in.EaseFactor, in.Interval, in.Repetition)
	}
	if !out.NextReviewDate.Equal(in.NextReviewDate) {
		t.Errorf("NextReviewDate = %v, want %v", out.NextReviewDate, in.NextReviewDate)
	}
	if out.LastReviewDate == nil || !out.LastReviewDate.Equal(last) {
		t.Errorf("LastReviewDate = %v, want %v", out.LastReviewDate, last)
	}
	if len(out.History) != 2 {
		t.Fatalf("History = %d entries, want 2", len(out.History))
	}
	if out.History[1].Quality != sm2.QualityPerfect || out.History[1].ResponseTimeMs != 800 {
		t.Errorf("History[1] = %+v, want the perfect review", out.History[1])
	}
	if out.LastQuality != sm2.QualityPerfect {
		t.Errorf("LastQuality = %d, want %d", out.LastQuality, sm2.QualityPerfect)
	}
}

func TestCardRepo_PutUpdatesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	card := sm2.Initialize("learner-1", "item-1", storeNow)
	if err := repo.Put(ctx, card); err != nil {
		t.Fatalf("put: %v", err)
	}

	card.EaseFactor = 2.8
	card.Repetition = 3
	if err := repo.Put(ctx, card); err != nil {
		t.Fatalf("second put: %v", err)
	}

	out, err := repo.Get(ctx, "learner-1", "item-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.EaseFactor != 2.8 || out.Repetition != 3 {
		t.Errorf("state = EF %v rep %d, want EF 2.8 rep 3", out.EaseFactor, out.Repetition)
	}

	all, err := repo.ListByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("list = %d cards, want 1 after upsert", len(all))
	}
}

func TestCardRepo_ListByLearnerOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	for _, item := range []string{"item-c", "item-a", "item-b"} {
		if err := repo.Put(ctx, sm2.Initialize("learner-1", item, storeNow)); err != nil {
			t.Fatalf("put %s: %v", item, err)
		}
	}
	if err := repo.Put(ctx, sm2.Initialize("learner-2", "item-z", storeNow)); err != nil {
		t.Fatalf("put other learner: %v", err)
	}

	cards, err := repo.ListByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("list = %d cards, want 3", len(cards))
	}
	for i, want := range []string{"item-a", "item-b", "item-c"} {
		if cards[i].ItemID != want {
			t.Errorf("cards[%d] = %s, want %s", i, cards[i].ItemID, want)
		}
	}
}

func TestReviewLog_AppendAndExists(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewLogRepo()
	ctx := context.Background()

	rec := engine.ReviewRecord{
		AttemptID:      "attempt-1",
		LearnerID:      "learner-1",
		ItemID:         "item-1",
		Quality:        sm2.QualityPerfect,
		ResponseTimeMs: 900,
		EaseFactor:     2.6,
		Interval:       1,
		Repetition:     1,
		Timestamp:      storeNow,
	}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	seen, err := repo.Exists(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !seen {
		t.Error("Exists = false for an appended attempt id")
	}

	seen, err = repo.Exists(ctx, "attempt-2")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if seen {
		t.Error("Exists = true for an unknown attempt id")
	}
}

func TestReviewLog_DuplicateAttemptIDRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewLogRepo()
	ctx := context.Background()

	rec := engine.ReviewRecord{
		AttemptID: "attempt-1", LearnerID: "learner-1", ItemID: "item-1",
		Quality: sm2.QualityPerfect, Timestamp: storeNow,
	}
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, rec); err == nil {
		t.Error("expected unique constraint error on duplicate attempt id")
	}
}

func TestReviewLog_EmptyAttemptIDGetsGenerated(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewLogRepo()
	ctx := context.Background()

	// Two submissions without attempt IDs must both land.
	for i := 0; i < 2; i++ {
		err := repo.Append(ctx, engine.ReviewRecord{
			LearnerID: "learner-1", ItemID: "item-1",
			Quality: sm2.QualityCorrectHesitation, Timestamp: storeNow,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := s.Client().ReviewEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("review events = %d, want 2", n)
	}
}

func TestAttemptRepo_RoundTripInOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	in := []analyzer.Record{
		{Topic: "fractions", Score: 55, Difficulty: 5, TimeSpentSecs: 600, Date: storeNow},
		{Topic: "algebra", BloomLevel: "apply", Score: 80, Difficulty: 6, TimeSpentSecs: 450, Date: storeNow.AddDate(0, 0, 1)},
	}
	for _, rec := range in {
		if err := repo.Append(ctx, "learner-1", rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.Append(ctx, "learner-2", analyzer.Record{
		Topic: "geometry", Score: 70, Difficulty: 4, Date: storeNow,
	}); err != nil {
		t.Fatalf("append other learner: %v", err)
	}

	out, err := repo.ListByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("list = %d records, want 2", len(out))
	}
	if out[0].Topic != "fractions" || out[1].Topic != "algebra" {
		t.Errorf("order = %s, %s; want append order", out[0].Topic, out[1].Topic)
	}
	if out[1].BloomLevel != "apply" {
		t.Errorf("BloomLevel = %q, want apply", out[1].BloomLevel)
	}
	if out[0].Score != 55 || out[0].TimeSpentSecs != 600 {
		t.Errorf("record = %+v, want score 55, 600s", out[0])
	}
}

func TestPathRepo_GetMissing(t *testing.T) {
	s := openTestStore(t)

	p, err := s.PathRepo().Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != nil {
		t.Errorf("path = %+v, want nil for unknown id", p)
	}
}

func testPath() path.Path {
	return path.Path{
		ID:         "path-1",
		LearnerID:  "learner-1",
		Subjects:   []string{"fractions", "algebra"},
		Difficulty: 6,
		Milestones: []path.Milestone{
			{Name: "Foundation: fractions", TargetAccuracy: 65, EstimatedDays: 7, QuestionQuota: 50},
			{Name: "Mastery: fractions", TargetAccuracy: 85, EstimatedDays: 21, QuestionQuota: 150},
		},
		Questions: []string{"q1", "q2"},
		Status:    path.StatusActive,
		CreatedAt: storeNow,
	}
}

func TestPathRepo_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	in := testPath()
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("get returned nil after put")
	}
	if out.LearnerID != "learner-1" || out.Difficulty != 6 {
		t.Errorf("path = %+v, want learner-1 at difficulty 6", out)
	}
	if len(out.Subjects) != 2 || out.Subjects[0] != "fractions" {
		t.Errorf("Subjects = %v, want weakest first", out.Subjects)
	}
	if len(out.Milestones) != 2 || out.Milestones[1].TargetAccuracy != 85 {
		t.Errorf("Milestones = %+v, want the two-stage ladder", out.Milestones)
	}
	if out.Status != path.StatusActive {
		t.Errorf("Status = %q, want active", out.Status)
	}
}

func TestPathRepo_UpdateJournalsNewCompletions(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	p := testPath()
	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("put: %v", err)
	}

	p.CompletionLog = append(p.CompletionLog, path.Completion{
		ItemID: "q1", Quality: 4, TimeSpent: 120, Timestamp: storeNow,
	})
	p.QuestionsCompleted = 1
	p.TotalTimeSpent = 120
	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	// Saving the same log again must not double-journal.
	if err := repo.Put(ctx, p); err != nil {
		t.Fatalf("idempotent update: %v", err)
	}

	n, err := s.Client().CompletionEvent.Query().
		Where(completionevent.PathID("path-1")).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("completion events = %d, want 1", n)
	}

	out, err := repo.Get(ctx, "path-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.QuestionsCompleted != 1 || out.TotalTimeSpent != 120 {
		t.Errorf("progress = %d done, %ds; want 1 done, 120s", out.QuestionsCompleted, out.TotalTimeSpent)
	}
	if len(out.CompletionLog) != 1 || out.CompletionLog[0].ItemID != "q1" {
		t.Errorf("CompletionLog = %+v, want the q1 entry", out.CompletionLog)
	}
}

func TestPathRepo_ActiveByLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	active := testPath()
	if err := repo.Put(ctx, active); err != nil {
		t.Fatalf("put: %v", err)
	}

	done := testPath()
	done.ID = "path-2"
	done.Status = path.StatusCompleted
	if err := repo.Put(ctx, done); err != nil {
		t.Fatalf("put completed: %v", err)
	}

	paths, err := repo.ActiveByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(paths) != 1 || paths[0].ID != "path-1" {
		t.Errorf("active = %+v, want only path-1", paths)
	}
}

func TestGlobalSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.ReviewLogRepo().Append(ctx, engine.ReviewRecord{
		AttemptID: "a1", LearnerID: "learner-1", ItemID: "item-1",
		Quality: sm2.QualityPerfect, Timestamp: storeNow,
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}
	if err := s.AttemptRepo().Append(ctx, "learner-1", analyzer.Record{
		Topic: "fractions", Score: 60, Difficulty: 5, Date: storeNow,
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	rev, err := s.Client().ReviewEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query review: %v", err)
	}
	att, err := s.Client().AttemptEvent.Query().
		Where(attemptevent.LearnerID("learner-1")).
		Only(ctx)
	if err != nil {
		t.Fatalf("query attempt: %v", err)
	}
	if att.Sequence != rev.Sequence+1 {
		t.Errorf("sequences = %d then %d, want consecutive across types",
			rev.Sequence, att.Sequence)
	}
}
