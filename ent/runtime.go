// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learnpath/ent/attemptevent"
	"github.com/abhisek/learnpath/ent/cardstate"
	"github.com/abhisek/learnpath/ent/completionevent"
	"github.com/abhisek/learnpath/ent/learningpath"
	"github.com/abhisek/learnpath/ent/reviewevent"
	"github.com/abhisek/learnpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[1].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	cardstateFields := schema.CardState{}.Fields()
	_ = cardstateFields
	// cardstateDescLearnerID is the schema descriptor for learner_id field.
	cardstateDescLearnerID := cardstateFields[0].Descriptor()
	// cardstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	cardstate.LearnerIDValidator = cardstateDescLearnerID.Validators[0].(func(string) error)
	// cardstateDescItemID is the schema descriptor for item_id field.
	cardstateDescItemID := cardstateFields[1].Descriptor()
	// cardstate.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	cardstate.ItemIDValidator = cardstateDescItemID.Validators[0].(func(string) error)
	// cardstateDescEaseFactor is the schema descriptor for ease_factor field.
	cardstateDescEaseFactor := cardstateFields[2].Descriptor()
	// cardstate.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	cardstate.DefaultEaseFactor = cardstateDescEaseFactor.Default.(float64)
	// cardstateDescInterval is the schema descriptor for interval field.
	cardstateDescInterval := cardstateFields[3].Descriptor()
	// cardstate.DefaultInterval holds the default value on creation for the interval field.
	cardstate.DefaultInterval = cardstateDescInterval.Default.(int)
	// cardstateDescRepetition is the schema descriptor for repetition field.
	cardstateDescRepetition := cardstateFields[4].Descriptor()
	// cardstate.DefaultRepetition holds the default value on creation for the repetition field.
	cardstate.DefaultRepetition = cardstateDescRepetition.Default.(int)
	// cardstateDescCreatedAt is the schema descriptor for created_at field.
	cardstateDescCreatedAt := cardstateFields[8].Descriptor()
	// cardstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	cardstate.DefaultCreatedAt = cardstateDescCreatedAt.Default.(func() time.Time)
	// cardstateDescUpdatedAt is the schema descriptor for updated_at field.
	cardstateDescUpdatedAt := cardstateFields[9].Descriptor()
	// cardstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cardstate.DefaultUpdatedAt = cardstateDescUpdatedAt.Default.(func() time.Time)
	// cardstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cardstate.UpdateDefaultUpdatedAt = cardstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescPathID is the schema descriptor for path_id field.
	completioneventDescPathID := completioneventFields[0].Descriptor()
	// completionevent.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	completionevent.PathIDValidator = completioneventDescPathID.Validators[0].(func(string) error)
	// completioneventDescItemID is the schema descriptor for item_id field.
	completioneventDescItemID := completioneventFields[1].Descriptor()
	// completionevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	completionevent.ItemIDValidator = completioneventDescItemID.Validators[0].(func(string) error)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescPathID is the schema descriptor for path_id field.
	learningpathDescPathID := learningpathFields[0].Descriptor()
	// learningpath.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	learningpath.PathIDValidator = learningpathDescPathID.Validators[0].(func(string) error)
	// learningpathDescLearnerID is the schema descriptor for learner_id field.
	learningpathDescLearnerID := learningpathFields[1].Descriptor()
	// learningpath.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learningpath.LearnerIDValidator = learningpathDescLearnerID.Validators[0].(func(string) error)
	// learningpathDescQuestionsCompleted is the schema descriptor for questions_completed field.
	learningpathDescQuestionsCompleted := learningpathFields[6].Descriptor()
	// learningpath.DefaultQuestionsCompleted holds the default value on creation for the questions_completed field.
	learningpath.DefaultQuestionsCompleted = learningpathDescQuestionsCompleted.Default.(int)
	// learningpathDescTotalTimeSpent is the schema descriptor for total_time_spent field.
	learningpathDescTotalTimeSpent := learningpathFields[7].Descriptor()
	// learningpath.DefaultTotalTimeSpent holds the default value on creation for the total_time_spent field.
	learningpath.DefaultTotalTimeSpent = learningpathDescTotalTimeSpent.Default.(int)
	// learningpathDescCreatedAt is the schema descriptor for created_at field.
	learningpathDescCreatedAt := learningpathFields[10].Descriptor()
	// learningpath.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningpath.DefaultCreatedAt = learningpathDescCreatedAt.Default.(func() time.Time)
	// learningpathDescUpdatedAt is the schema descriptor for updated_at field.
	learningpathDescUpdatedAt := learningpathFields[11].Descriptor()
	// learningpath.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningpath.DefaultUpdatedAt = learningpathDescUpdatedAt.Default.(func() time.Time)
	// learningpath.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningpath.UpdateDefaultUpdatedAt = learningpathDescUpdatedAt.UpdateDefault.(func() time.Time)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescAttemptID is the schema descriptor for attempt_id field.
	revieweventDescAttemptID := revieweventFields[0].Descriptor()
	// reviewevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	reviewevent.AttemptIDValidator = revieweventDescAttemptID.Validators[0].(func(string) error)
	// revieweventDescLearnerID is the schema descriptor for learner_id field.
	revieweventDescLearnerID := revieweventFields[1].Descriptor()
	// reviewevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewevent.LearnerIDValidator = revieweventDescLearnerID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[2].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
}
