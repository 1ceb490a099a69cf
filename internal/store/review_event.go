package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/reviewevent"
	"github.com/abhisek/learnpath/internal/engine"
)

// ReviewLogRepo is the append-only review event log. The attempt ID column
// carries a unique constraint, so even a racing duplicate submission fails
// at the database rather than double-applying.
type ReviewLogRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ engine.ReviewLogRepo = (*ReviewLogRepo)(nil)

// Append writes one applied review to the log. Submissions without an
// attempt ID get a generated one so the unique column stays populated.
func (r *ReviewLogRepo) Append(ctx context.Context, rec engine.ReviewRecord) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	attemptID := rec.AttemptID
	if attemptID == "" {
		attemptID = uuid.NewString()
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seq).
		SetTimestamp(rec.Timestamp).
		SetAttemptID(attemptID).
		SetLearnerID(rec.LearnerID).
		SetItemID(rec.ItemID).
		SetQuality(int(rec.Quality)).
		SetResponseTimeMs(rec.ResponseTimeMs).
		SetEaseFactor(rec.EaseFactor).
		SetInterval(rec.Interval).
		SetRepetition(rec.Repetition).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// Exists reports whether a review with the given attempt ID was already
// applied.
func (r *ReviewLogRepo) Exists(ctx context.Context, attemptID string) (bool, error) {
	seen, err := r.client.ReviewEvent.Query().
		Where(reviewevent.AttemptID(attemptID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check attempt id: %w", err)
	}
	return seen, nil
}
