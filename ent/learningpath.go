// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnpath/ent/learningpath"
)

// LearningPath is the model entity for the LearningPath schema.
type LearningPath struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External path identifier (UUID)
	PathID string `json:"path_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Target subjects, weakest first
	Subjects []string `json:"subjects,omitempty"`
	// Path difficulty 1-10
	Difficulty int `json:"difficulty,omitempty"`
	// Ordered milestone ladder
	Milestones []map[string]interface{} `json:"milestones,omitempty"`
	// Assigned question item IDs
	Questions []string `json:"questions,omitempty"`
	// QuestionsCompleted holds the value of the "questions_completed" field.
	QuestionsCompleted int `json:"questions_completed,omitempty"`
	// Accumulated seconds across completions
	TotalTimeSpent int `json:"total_time_spent,omitempty"`
	// Append-only {item_id, quality, time_spent, timestamp}
	CompletionLog []map[string]interface{} `json:"completion_log,omitempty"`
	// Status holds the value of the "status" field.
	Status learningpath.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPath) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldSubjects, learningpath.FieldMilestones, learningpath.FieldQuestions, learningpath.FieldCompletionLog:
			values[i] = new([]byte)
		case learningpath.FieldID, learningpath.FieldDifficulty, learningpath.FieldQuestionsCompleted, learningpath.FieldTotalTimeSpent:
			values[i] = new(sql.NullInt64)
		case learningpath.FieldPathID, learningpath.FieldLearnerID, learningpath.FieldStatus:
			values[i] = new(sql.NullString)
		case learningpath.FieldCreatedAt, learningpath.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPath fields.
func (lp *LearningPath) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			lp.ID = int(value.Int64)
		case learningpath.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				lp.PathID = value.String
			}
		case learningpath.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				lp.LearnerID = value.String
			}
		case learningpath.FieldSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &lp.Subjects); err != nil {
					return fmt.Errorf("unmarshal field subjects: %w", err)
				}
			}
		case learningpath.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				lp.Difficulty = int(value.Int64)
			}
		case learningpath.FieldMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &lp.Milestones); err != nil {
					return fmt.Errorf("unmarshal field milestones: %w", err)
				}
			}
		case learningpath.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &lp.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case learningpath.FieldQuestionsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_completed", values[i])
			} else if value.Valid {
				lp.QuestionsCompleted = int(value.Int64)
			}
		case learningpath.FieldTotalTimeSpent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_spent", values[i])
			} else if value.Valid {
				lp.TotalTimeSpent = int(value.Int64)
			}
		case learningpath.FieldCompletionLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completion_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &lp.CompletionLog); err != nil {
					return fmt.Errorf("unmarshal field completion_log: %w", err)
				}
			}
		case learningpath.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				lp.Status = learningpath.Status(value.String)
			}
		case learningpath.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				lp.CreatedAt = value.Time
			}
		case learningpath.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				lp.UpdatedAt = value.Time
			}
		default:
			lp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPath.
// This includes values selected through modifiers, order, etc.
func (lp *LearningPath) Value(name string) (ent.Value, error) {
	return lp.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPath.
// Note that you need to call LearningPath.Unwrap() before calling this method if this LearningPath
// was returned from a transaction, and the transaction was committed or rolled back.
func (lp *LearningPath) Update() *LearningPathUpdateOne {
	return NewLearningPathClient(lp.config).UpdateOne(lp)
}

// Unwrap unwraps the LearningPath entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lp *LearningPath) Unwrap() *LearningPath {
	_tx, ok := lp.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPath is not a transactional entity")
	}
	lp.config.driver = _tx.drv
	return lp
}

// String implements the fmt.Stringer.
func (lp *LearningPath) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPath(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lp.ID))
	builder.WriteString("path_id=")
	builder.WriteString(lp.PathID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(lp.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("subjects=")
	builder.WriteString(fmt.Sprintf("%v", lp.Subjects))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", lp.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("milestones=")
	builder.WriteString(fmt.Sprintf("%v", lp.Milestones))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", lp.Questions))
	builder.WriteString(", ")
	builder.WriteString("questions_completed=")
	builder.WriteString(fmt.Sprintf("%v", lp.QuestionsCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_time_spent=")
	builder.WriteString(fmt.Sprintf("%v", lp.TotalTimeSpent))
	builder.WriteString(", ")
	builder.WriteString("completion_log=")
	builder.WriteString(fmt.Sprintf("%v", lp.CompletionLog))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", lp.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(lp.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(lp.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPaths is a parsable slice of LearningPath.
type LearningPaths []*LearningPath
