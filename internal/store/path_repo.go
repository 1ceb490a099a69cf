package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/learningpath"
	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/path"
)

// PathRepo stores learning paths keyed by path ID. Each completed question
// is additionally journaled as a CompletionEvent so the shared event log
// keeps cross-type ordering between reviews, attempts, and completions.
type PathRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ engine.PathRepo = (*PathRepo)(nil)

// Get returns the path with the given ID, or nil if none exists.
func (r *PathRepo) Get(ctx context.Context, pathID string) (*path.Path, error) {
	row, err := r.client.LearningPath.Query().
		Where(learningpath.PathID(pathID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query path: %w", err)
	}
	return pathFromRow(row)
}

// Put writes the path, creating the row on first save. New completion log
// entries beyond what the stored row already has are journaled as
// completion events.
func (r *PathRepo) Put(ctx context.Context, p path.Path) error {
	milestones, err := toJSONMaps(p.Milestones)
	if err != nil {
		return fmt.Errorf("encode milestones: %w", err)
	}
	completions, err := toJSONMaps(p.CompletionLog)
	if err != nil {
		return fmt.Errorf("encode completion log: %w", err)
	}

	existing, err := r.client.LearningPath.Query().
		Where(learningpath.PathID(p.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query path: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearningPath.Create().
			SetPathID(p.ID).
			SetLearnerID(p.LearnerID).
			SetSubjects(p.Subjects).
			SetDifficulty(p.Difficulty).
			SetMilestones(milestones).
			SetQuestions(p.Questions).
			SetQuestionsCompleted(p.QuestionsCompleted).
			SetTotalTimeSpent(p.TotalTimeSpent).
			SetCompletionLog(completions).
			SetStatus(learningpath.Status(p.Status)).
			SetCreatedAt(p.CreatedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create path: %w", err)
		}
		return r.journalCompletions(ctx, p, 0)
	}

	logged := len(existing.CompletionLog)

	_, err = existing.Update().
		SetSubjects(p.Subjects).
		SetDifficulty(p.Difficulty).
		SetMilestones(milestones).
		SetQuestions(p.Questions).
		SetQuestionsCompleted(p.QuestionsCompleted).
		SetTotalTimeSpent(p.TotalTimeSpent).
		SetCompletionLog(completions).
		SetStatus(learningpath.Status(p.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update path: %w", err)
	}
	return r.journalCompletions(ctx, p, logged)
}

// ActiveByLearner returns the learner's active paths, newest first.
func (r *PathRepo) ActiveByLearner(ctx context.Context, learnerID string) ([]path.Path, error) {
	rows, err := r.client.LearningPath.Query().
		Where(
			learningpath.LearnerID(learnerID),
			learningpath.StatusEQ(learningpath.StatusActive),
		).
		Order(ent.Desc(learningpath.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active paths: %w", err)
	}

	paths := make([]path.Path, 0, len(rows))
	for _, row := range rows {
		p, err := pathFromRow(row)
		if err != nil {
			return nil, err
		}
		paths = append(paths, *p)
	}
	return paths, nil
}

// journalCompletions appends completion events for log entries past the
// already-journaled prefix. The log is append-only, so the prefix length is
// enough to identify what is new.
func (r *PathRepo) journalCompletions(ctx context.Context, p path.Path, from int) error {
	for _, c := range p.CompletionLog[min(from, len(p.CompletionLog)):] {
		seq, err := r.seq.Next(ctx)
		if err != nil {
			return err
		}
		_, err = r.client.CompletionEvent.Create().
			SetSequence(seq).
			SetTimestamp(c.Timestamp).
			SetPathID(p.ID).
			SetItemID(c.ItemID).
			SetQuality(c.Quality).
			SetTimeSpentSecs(c.TimeSpent).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append completion event: %w", err)
		}
	}
	return nil
}

func pathFromRow(row *ent.LearningPath) (*path.Path, error) {
	p := &path.Path{
		ID:                 row.PathID,
		LearnerID:          row.LearnerID,
		Subjects:           row.Subjects,
		Difficulty:         row.Difficulty,
		Questions:          row.Questions,
		QuestionsCompleted: row.QuestionsCompleted,
		TotalTimeSpent:     row.TotalTimeSpent,
		Status:             path.Status(row.Status),
		CreatedAt:          row.CreatedAt,
	}
	if err := fromJSONMaps(row.Milestones, &p.Milestones); err != nil {
		return nil, fmt.Errorf("decode milestones: %w", err)
	}
	if len(row.CompletionLog) > 0 {
		if err := fromJSONMaps(row.CompletionLog, &p.CompletionLog); err != nil {
			return nil, fmt.Errorf("decode completion log: %w", err)
		}
	}
	return p, nil
}
