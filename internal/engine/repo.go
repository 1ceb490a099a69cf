package engine

import (
	"context"
	"time"

	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/sm2"
)

// CardRepo stores per-learner, per-item spaced repetition state.
// Get returns (nil, nil) for a card that does not exist yet; the engine
// lazily initializes it.
type CardRepo interface {
	Get(ctx context.Context, learnerID, itemID string) (*sm2.Card, error)
	Put(ctx context.Context, card sm2.Card) error
	ListByLearner(ctx context.Context, learnerID string) ([]sm2.Card, error)
}

// ReviewRecord is one applied review submission, persisted for audit and
// duplicate detection.
type ReviewRecord struct {
	AttemptID      string
	LearnerID      string
	ItemID         string
	Quality        sm2.Quality
	ResponseTimeMs int
	EaseFactor     float64
	Interval       int
	Repetition     int
	Timestamp      time.Time
}

// ReviewLogRepo is the append-only review event log.
type ReviewLogRepo interface {
	Append(ctx context.Context, rec ReviewRecord) error
	Exists(ctx context.Context, attemptID string) (bool, error)
}

// AttemptRepo is the append-only performance record log.
type AttemptRepo interface {
	Append(ctx context.Context, learnerID string, rec analyzer.Record) error
	ListByLearner(ctx context.Context, learnerID string) ([]analyzer.Record, error)
}

// PathRepo stores learning paths keyed by path ID.
// Get returns (nil, nil) for an unknown path; the engine maps that to
// ErrPathNotFound.
type PathRepo interface {
	Get(ctx context.Context, pathID string) (*path.Path, error)
	Put(ctx context.Context, p path.Path) error
	ActiveByLearner(ctx context.Context, learnerID string) ([]path.Path, error)
}
