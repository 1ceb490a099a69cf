// Code generated by ent, DO NOT EDIT.

package cardstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLearnerID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldItemID, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldEaseFactor, v))
}

// Interval applies equality check predicate on the "interval" field. It's identical to IntervalEQ.
func Interval(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldInterval, v))
}

// Repetition applies equality check predicate on the "repetition" field. It's identical to RepetitionEQ.
func Repetition(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldRepetition, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldNextReviewDate, v))
}

// LastReviewDate applies equality check predicate on the "last_review_date" field. It's identical to LastReviewDateEQ.
func LastReviewDate(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLastReviewDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContainsFold(FieldLearnerID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.CardState {
	return predicate.CardState(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.CardState {
	return predicate.CardState(sql.FieldContainsFold(FieldItemID, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalEQ applies the EQ predicate on the "interval" field.
func IntervalEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldInterval, v))
}

// IntervalNEQ applies the NEQ predicate on the "interval" field.
func IntervalNEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldInterval, v))
}

// IntervalIn applies the In predicate on the "interval" field.
func IntervalIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldInterval, vs...))
}

// IntervalNotIn applies the NotIn predicate on the "interval" field.
func IntervalNotIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldInterval, vs...))
}

// IntervalGT applies the GT predicate on the "interval" field.
func IntervalGT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldInterval, v))
}

// IntervalGTE applies the GTE predicate on the "interval" field.
func IntervalGTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldInterval, v))
}

// IntervalLT applies the LT predicate on the "interval" field.
func IntervalLT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldInterval, v))
}

// IntervalLTE applies the LTE predicate on the "interval" field.
func IntervalLTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldInterval, v))
}

// RepetitionEQ applies the EQ predicate on the "repetition" field.
func RepetitionEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldRepetition, v))
}

// RepetitionNEQ applies the NEQ predicate on the "repetition" field.
func RepetitionNEQ(v int) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldRepetition, v))
}

// RepetitionIn applies the In predicate on the "repetition" field.
func RepetitionIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldRepetition, vs...))
}

// RepetitionNotIn applies the NotIn predicate on the "repetition" field.
func RepetitionNotIn(vs ...int) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldRepetition, vs...))
}

// RepetitionGT applies the GT predicate on the "repetition" field.
func RepetitionGT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldRepetition, v))
}

// RepetitionGTE applies the GTE predicate on the "repetition" field.
func RepetitionGTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldRepetition, v))
}

// RepetitionLT applies the LT predicate on the "repetition" field.
func RepetitionLT(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldRepetition, v))
}

// RepetitionLTE applies the LTE predicate on the "repetition" field.
func RepetitionLTE(v int) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldRepetition, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldNextReviewDate, v))
}

// LastReviewDateEQ applies the EQ predicate on the "last_review_date" field.
func LastReviewDateEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldLastReviewDate, v))
}

// LastReviewDateNEQ applies the NEQ predicate on the "last_review_date" field.
func LastReviewDateNEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldLastReviewDate, v))
}

// LastReviewDateIn applies the In predicate on the "last_review_date" field.
func LastReviewDateIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldLastReviewDate, vs...))
}

// LastReviewDateNotIn applies the NotIn predicate on the "last_review_date" field.
func LastReviewDateNotIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldLastReviewDate, vs...))
}

// LastReviewDateGT applies the GT predicate on the "last_review_date" field.
func LastReviewDateGT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldLastReviewDate, v))
}

// LastReviewDateGTE applies the GTE predicate on the "last_review_date" field.
func LastReviewDateGTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldLastReviewDate, v))
}

// LastReviewDateLT applies the LT predicate on the "last_review_date" field.
func LastReviewDateLT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldLastReviewDate, v))
}

// LastReviewDateLTE applies the LTE predicate on the "last_review_date" field.
func LastReviewDateLTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldLastReviewDate, v))
}

// LastReviewDateIsNil applies the IsNil predicate on the "last_review_date" field.
func LastReviewDateIsNil() predicate.CardState {
	return predicate.CardState(sql.FieldIsNull(FieldLastReviewDate))
}

// LastReviewDateNotNil applies the NotNil predicate on the "last_review_date" field.
func LastReviewDateNotNil() predicate.CardState {
	return predicate.CardState(sql.FieldNotNull(FieldLastReviewDate))
}

// ReviewHistoryIsNil applies the IsNil predicate on the "review_history" field.
func ReviewHistoryIsNil() predicate.CardState {
	return predicate.CardState(sql.FieldIsNull(FieldReviewHistory))
}

// ReviewHistoryNotNil applies the NotNil predicate on the "review_history" field.
func ReviewHistoryNotNil() predicate.CardState {
	return predicate.CardState(sql.FieldNotNull(FieldReviewHistory))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CardState {
	return predicate.CardState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardState) predicate.CardState {
	return predicate.CardState(sql.NotPredicates(p))
}
