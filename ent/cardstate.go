// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnpath/ent/cardstate"
)

// CardState is the model entity for the CardState schema.
type CardState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning learner
	LearnerID string `json:"learner_id,omitempty"`
	// The reviewed item (card or topic)
	ItemID string `json:"item_id,omitempty"`
	// SM-2 ease factor, floored at 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Current review interval in days
	Interval int `json:"interval,omitempty"`
	// Consecutive successful reviews since last failure
	Repetition int `json:"repetition,omitempty"`
	// Midnight-normalized date of the next due review
	NextReviewDate time.Time `json:"next_review_date,omitempty"`
	// When the card was last reviewed
	LastReviewDate *time.Time `json:"last_review_date,omitempty"`
	// Append-only log of {quality, response_time_ms, date}
	ReviewHistory []map[string]interface{} `json:"review_history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardstate.FieldReviewHistory:
			values[i] = new([]byte)
		case cardstate.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case cardstate.FieldID, cardstate.FieldInterval, cardstate.FieldRepetition:
			values[i] = new(sql.NullInt64)
		case cardstate.FieldLearnerID, cardstate.FieldItemID:
			values[i] = new(sql.NullString)
		case cardstate.FieldNextReviewDate, cardstate.FieldLastReviewDate, cardstate.FieldCreatedAt, cardstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardState fields.
func (cs *CardState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cs.ID = int(value.Int64)
		case cardstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				cs.LearnerID = value.String
			}
		case cardstate.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				cs.ItemID = value.String
			}
		case cardstate.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				cs.EaseFactor = value.Float64
			}
		case cardstate.FieldInterval:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval", values[i])
			} else if value.Valid {
				cs.Interval = int(value.Int64)
			}
		case cardstate.FieldRepetition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition", values[i])
			} else if value.Valid {
				cs.Repetition = int(value.Int64)
			}
		case cardstate.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				cs.NextReviewDate = value.Time
			}
		case cardstate.FieldLastReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review_date", values[i])
			} else if value.Valid {
				cs.LastReviewDate = new(time.Time)
				*cs.LastReviewDate = value.Time
			}
		case cardstate.FieldReviewHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field review_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cs.ReviewHistory); err != nil {
					return fmt.Errorf("unmarshal field review_history: %w", err)
				}
			}
		case cardstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cs.CreatedAt = value.Time
			}
		case cardstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cs.UpdatedAt = value.Time
			}
		default:
			cs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CardState.
// This includes values selected through modifiers, order, etc.
func (cs *CardState) Value(name string) (ent.Value, error) {
	return cs.selectValues.Get(name)
}

// Update returns a builder for updating this CardState.
// Note that you need to call CardState.Unwrap() before calling this method if this CardState
// was returned from a transaction, and the transaction was committed or rolled back.
func (cs *CardState) Update() *CardStateUpdateOne {
	return NewCardStateClient(cs.config).UpdateOne(cs)
}

// Unwrap unwraps the CardState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cs *CardState) Unwrap() *CardState {
	_tx, ok := cs.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardState is not a transactional entity")
	}
	cs.config.driver = _tx.drv
	return cs
}

// String implements the fmt.Stringer.
func (cs *CardState) String() string {
	var builder strings.Builder
	builder.WriteString("CardState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cs.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(cs.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(cs.ItemID)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", cs.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval=")
	builder.WriteString(fmt.Sprintf("%v", cs.Interval))
	builder.WriteString(", ")
	builder.WriteString("repetition=")
	builder.WriteString(fmt.Sprintf("%v", cs.Repetition))
	builder.WriteString(", ")
	builder.WriteString("next_review_date=")
	builder.WriteString(cs.NextReviewDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := cs.LastReviewDate; v != nil {
		builder.WriteString("last_review_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("review_history=")
	builder.WriteString(fmt.Sprintf("%v", cs.ReviewHistory))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cs.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cs.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardStates is a parsable slice of CardState.
type CardStates []*CardState
