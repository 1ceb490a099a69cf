// Package engine wires the spaced repetition, analytics, prediction, and
// path components behind injected repositories. All state lives in the
// repositories; the engine itself is stateless and safe to share across
// learners.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/internal/analyzer"
	"github.com/abhisek/learnpath/internal/difficulty"
	"github.com/abhisek/learnpath/internal/path"
	"github.com/abhisek/learnpath/internal/policy"
	"github.com/abhisek/learnpath/internal/predict"
	"github.com/abhisek/learnpath/internal/queue"
	"github.com/abhisek/learnpath/internal/sm2"
)

// Sentinel errors. Check with errors.Is.
var (
	// ErrDuplicateReview means the attempt ID was already applied; the
	// caller's retry must not double-apply the review.
	ErrDuplicateReview = errors.New("engine: review attempt already applied")
	// ErrPathNotFound means no learning path exists with the given ID.
	ErrPathNotFound = errors.New("engine: learning path not found")
)

// Service is the adaptive learning engine façade.
type Service struct {
	cards    CardRepo
	reviews  ReviewLogRepo
	attempts AttemptRepo
	paths    PathRepo
	pol      policy.Policy
	now      func() time.Time
}

// Options configures a Service.
type Options struct {
	Cards    CardRepo
	Reviews  ReviewLogRepo
	Attempts AttemptRepo
	Paths    PathRepo
	Policy   policy.Policy
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// New creates a Service from the given repositories and policy.
func New(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		cards:    opts.Cards,
		reviews:  opts.Reviews,
		attempts: opts.Attempts,
		paths:    opts.Paths,
		pol:      opts.Policy,
		now:      now,
	}
}

// ReviewSubmission is one incoming review event.
type ReviewSubmission struct {
	AttemptID      string
	LearnerID      string
	ItemID         string
	Quality        sm2.Quality
	ResponseTimeMs int
}

// SubmitReview applies one review to the learner's card, lazily
// initializing state on first exposure. The attempt ID deduplicates
// retried delivery: a duplicate returns ErrDuplicateReview without
// touching state.
func (s *Service) SubmitReview(ctx context.Context, sub ReviewSubmission) (sm2.Card, error) {
	if sub.AttemptID != "" {
		seen, err := s.reviews.Exists(ctx, sub.AttemptID)
		if err != nil {
			return sm2.Card{}, fmt.Errorf("check attempt id: %w", err)
		}
		if seen {
			return sm2.Card{}, fmt.Errorf("%w: %s", ErrDuplicateReview, sub.AttemptID)
		}
	}

	now := s.now()

	card, err := s.cards.Get(ctx, sub.LearnerID, sub.ItemID)
	if err != nil {
		return sm2.Card{}, fmt.Errorf("load card: %w", err)
	}
	if card == nil {
		fresh := sm2.Initialize(sub.LearnerID, sub.ItemID, now)
		card = &fresh
	}

	next, err := sm2.Review(*card, sub.Quality, sub.ResponseTimeMs, now)
	if err != nil {
		return sm2.Card{}, err
	}

	if err := s.cards.Put(ctx, next); err != nil {
		return sm2.Card{}, fmt.Errorf("save card: %w", err)
	}

	if err := s.reviews.Append(ctx, ReviewRecord{
		AttemptID:      sub.AttemptID,
		LearnerID:      sub.LearnerID,
		ItemID:         sub.ItemID,
		Quality:        sub.Quality,
		ResponseTimeMs: sub.ResponseTimeMs,
		EaseFactor:     next.EaseFactor,
		Interval:       next.Interval,
		Repetition:     next.Repetition,
		Timestamp:      now,
	}); err != nil {
		return sm2.Card{}, fmt.Errorf("append review event: %w", err)
	}

	return next, nil
}

// Attempt is one incoming test/question completion event.
type Attempt struct {
	LearnerID     string
	Topic         string
	BloomLevel    string
	Score         float64
	Difficulty    int
	TimeSpentSecs int
}

// RecordAttempt appends a performance record to the learner's history.
func (s *Service) RecordAttempt(ctx context.Context, a Attempt) error {
	rec := analyzer.Record{
		Topic:         a.Topic,
		BloomLevel:    a.BloomLevel,
		Score:         a.Score,
		Difficulty:    a.Difficulty,
		TimeSpentSecs: a.TimeSpentSecs,
		Date:          s.now(),
	}
	if err := s.attempts.Append(ctx, a.LearnerID, rec); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// ReviewQueue builds the learner's review queue for the given day.
func (s *Service) ReviewQueue(ctx context.Context, learnerID string, today time.Time) (queue.Queue, error) {
	cards, err := s.cards.ListByLearner(ctx, learnerID)
	if err != nil {
		return queue.Queue{}, fmt.Errorf("list cards: %w", err)
	}
	return queue.Build(cards, today), nil
}

// DailyLoad recommends a day's study load from the learner's collection,
// deriving the mature fraction from the stored cards.
func (s *Service) DailyLoad(ctx context.Context, learnerID string) (queue.DailyLoad, error) {
	cards, err := s.cards.ListByLearner(ctx, learnerID)
	if err != nil {
		return queue.DailyLoad{}, fmt.Errorf("list cards: %w", err)
	}

	mature := 0
	for _, c := range cards {
		if c.IsMature() {
			mature++
		}
	}
	maturePct := 0.0
	if len(cards) > 0 {
		maturePct = float64(mature) / float64(len(cards))
	}
	return queue.RecommendDailyLoad(len(cards), maturePct, s.pol), nil
}

// Recommendations returns ordered study advice for the learner.
func (s *Service) Recommendations(ctx context.Context, learnerID string) ([]string, error) {
	records, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	a := path.Analyze(records, s.pol, s.now())
	return path.Recommendations(a), nil
}

// Predictions aggregates the learner's score projections.
type Predictions struct {
	Forecast     predict.ScoreForecast   `json:"forecast"`
	Ceiling      predict.CeilingEstimate `json:"ceiling"`
	Target       predict.TargetForecast  `json:"target"`
	ScorePerHour float64                 `json:"score_per_hour"`
	ExamsPerWeek int                     `json:"exams_per_week"`
	KeyAreas     []string                `json:"key_areas"`
}

// Predict computes the full prediction snapshot for the learner. Key areas
// are the learner's current weaknesses, weakest first. With fewer than two
// recorded attempts everything degrades to zero values.
func (s *Service) Predict(ctx context.Context, learnerID string, targetScore float64) (Predictions, error) {
	records, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return Predictions{}, fmt.Errorf("list attempts: %w", err)
	}

	points := make([]predict.Point, len(records))
	for i, r := range records {
		points[i] = predict.Point{
			Score:         r.Score,
			StudyTimeSecs: r.TimeSpentSecs,
			Date:          r.Date,
		}
	}

	p := Predictions{
		Forecast:     predict.NextScore(points),
		Ceiling:      predict.Ceiling(points),
		Target:       predict.TimeToTarget(points, targetScore),
		ScorePerHour: predict.StudyTimeROI(points),
		ExamsPerWeek: predict.OptimalFrequency(points),
	}

	profile := analyzer.StrengthsWeaknesses(records, s.pol)
	for _, w := range profile.Weaknesses {
		p.KeyAreas = append(p.KeyAreas, w.Topic)
	}
	return p, nil
}

// RecommendDifficulty adjusts a working difficulty from the learner's
// accuracy so far. Pass current <= 0 to derive the starting difficulty from
// the average score. Without enough samples the current difficulty holds.
func (s *Service) RecommendDifficulty(ctx context.Context, learnerID string, current int) (int, error) {
	records, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return 0, fmt.Errorf("list attempts: %w", err)
	}

	avg := 0.0
	for _, r := range records {
		avg += r.Score
	}
	if len(records) > 0 {
		avg /= float64(len(records))
	}

	if current <= 0 {
		current = difficulty.Optimal(avg)
	}
	return difficulty.Adjust(current, avg, len(records), s.pol), nil
}

// Analytics computes the learner's full analytics snapshot: strengths and
// weaknesses, learning patterns, score forecast, and average score.
func (s *Service) Analytics(ctx context.Context, learnerID string) (path.Analytics, error) {
	records, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return path.Analytics{}, fmt.Errorf("list attempts: %w", err)
	}
	return path.Analyze(records, s.pol, s.now()), nil
}

// GeneratePath builds and stores a learning path for the learner. The item
// pool comes from the (external) content store.
func (s *Service) GeneratePath(ctx context.Context, learnerID string, pool []path.Item) (path.Path, error) {
	records, err := s.attempts.ListByLearner(ctx, learnerID)
	if err != nil {
		return path.Path{}, fmt.Errorf("list attempts: %w", err)
	}

	a := path.Analyze(records, s.pol, s.now())
	p := path.Generate(learnerID, a, pool, s.pol, s.now())

	if err := s.paths.Put(ctx, p); err != nil {
		return path.Path{}, fmt.Errorf("save path: %w", err)
	}
	return p, nil
}

// LogCompletion records one completed question against a path and returns
// the refreshed progress report.
func (s *Service) LogCompletion(ctx context.Context, pathID, itemID string, quality sm2.Quality, timeSpent int) (path.Report, error) {
	if !quality.IsValid() {
		return path.Report{}, fmt.Errorf("%w: %d", sm2.ErrInvalidQuality, int(quality))
	}

	p, err := s.getPath(ctx, pathID)
	if err != nil {
		return path.Report{}, err
	}

	path.LogCompletion(p, itemID, int(quality), timeSpent, s.now())

	if err := s.paths.Put(ctx, *p); err != nil {
		return path.Report{}, fmt.Errorf("save path: %w", err)
	}
	return path.Progress(p, s.pol, s.now()), nil
}

// PathProgress returns the progress report for a path.
func (s *Service) PathProgress(ctx context.Context, pathID string) (path.Report, error) {
	p, err := s.getPath(ctx, pathID)
	if err != nil {
		return path.Report{}, err
	}
	return path.Progress(p, s.pol, s.now()), nil
}

// CompletePath explicitly finishes a path, independent of its completion
// percentage.
func (s *Service) CompletePath(ctx context.Context, pathID string) error {
	return s.transition(ctx, pathID, path.Complete)
}

// ActivePaths lists the learner's active paths.
func (s *Service) ActivePaths(ctx context.Context, learnerID string) ([]path.Path, error) {
	paths, err := s.paths.ActiveByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list active paths: %w", err)
	}
	return paths, nil
}

// PausePath pauses an active path. Paths in any other state are unchanged.
func (s *Service) PausePath(ctx context.Context, pathID string) error {
	return s.transition(ctx, pathID, path.Pause)
}

// ResumePath reactivates a paused path.
func (s *Service) ResumePath(ctx context.Context, pathID string) error {
	return s.transition(ctx, pathID, path.Resume)
}

// AbandonPath marks a path abandoned unless it already completed.
func (s *Service) AbandonPath(ctx context.Context, pathID string) error {
	return s.transition(ctx, pathID, path.Abandon)
}

func (s *Service) transition(ctx context.Context, pathID string, apply func(*path.Path)) error {
	p, err := s.getPath(ctx, pathID)
	if err != nil {
		return err
	}
	apply(p)
	if err := s.paths.Put(ctx, *p); err != nil {
		return fmt.Errorf("save path: %w", err)
	}
	return nil
}

func (s *Service) getPath(ctx context.Context, pathID string) (*path.Path, error) {
	p, err := s.paths.Get(ctx, pathID)
	if err != nil {
		return nil, fmt.Errorf("load path: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, pathID)
	}
	return p, nil
}
