// Package path generates multi-milestone learning paths and tracks a
// learner's progress through them.
package path

import "time"

// Status is a learning path's lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusAbandoned Status = "abandoned"
)

// Milestone is a named checkpoint with a target accuracy and question quota.
type Milestone struct {
	Name           string `json:"name"`
	TargetAccuracy int    `json:"target_accuracy"`
	EstimatedDays  int    `json:"estimated_days"`
	QuestionQuota  int    `json:"question_quota"`
}

// Completion is one entry of a path's append-only completion log.
type Completion struct {
	ItemID    string    `json:"item_id"`
	Quality   int       `json:"quality"`
	TimeSpent int       `json:"time_spent"`
	Timestamp time.Time `json:"timestamp"`
}

// Path is a personalized curriculum for one learner.
type Path struct {
	ID                 string       `json:"id"`
	LearnerID          string       `json:"learner_id"`
	Subjects           []string     `json:"subjects"` // weakest first
	Difficulty         int          `json:"difficulty"`
	Milestones         []Milestone  `json:"milestones"`
	Questions          []string     `json:"questions"`
	QuestionsCompleted int          `json:"questions_completed"`
	TotalTimeSpent     int          `json:"total_time_spent"` // seconds
	CompletionLog      []Completion `json:"completion_log"`
	Status             Status       `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Item is a candidate question from the (external) content store.
type Item struct {
	ID         string `json:"id"`
	Topic      string `json:"topic"`
	Difficulty int    `json:"difficulty"`
}
