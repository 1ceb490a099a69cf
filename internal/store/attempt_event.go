package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/attemptevent"
	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/engine"
)

// AttemptRepo is the append-only performance record log.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ engine.AttemptRepo = (*AttemptRepo)(nil)

// Append writes one performance record to the learner's history.
func (r *AttemptRepo) Append(ctx context.Context, learnerID string, rec analyzer.Record) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetTimestamp(rec.Date).
		SetLearnerID(learnerID).
		SetTopic(rec.Topic).
		SetBloomLevel(rec.BloomLevel).
		SetScore(rec.Score).
		SetDifficulty(rec.Difficulty).
		SetTimeSpentSecs(rec.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

// ListByLearner returns the learner's full history in event order.
func (r *AttemptRepo) ListByLearner(ctx context.Context, learnerID string) ([]analyzer.Record, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempt events: %w", err)
	}

	records := make([]analyzer.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, analyzer.Record{
			Topic:         row.Topic,
			BloomLevel:    row.BloomLevel,
			Score:         row.Score,
			Difficulty:    row.Difficulty,
			TimeSpentSecs: row.TimeSpentSecs,
			Date:          row.Timestamp,
		})
	}
	return records, nil
}
