package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/cardstate"
	"github.com/abhisek/learnpath/internal/engine"
	"github.com/abhisek/learnpath/internal/sm2"
)

// CardRepo persists spaced repetition card state keyed by learner and item.
type CardRepo struct {
	client *ent.Client
}

var _ engine.CardRepo = (*CardRepo)(nil)

// Get returns the card for the learner/item pair, or nil if the learner
// has never been exposed to the item.
func (r *CardRepo) Get(ctx context.Context, learnerID, itemID string) (*sm2.Card, error) {
	row, err := r.client.CardState.Query().
		Where(cardstate.LearnerID(learnerID), cardstate.ItemID(itemID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query card: %w", err)
	}
	return cardFromRow(row)
}

// Put writes the card state, creating the row on first exposure.
func (r *CardRepo) Put(ctx context.Context, card sm2.Card) error {
	history, err := toJSONMaps(card.History)
	if err != nil {
		return fmt.Errorf("encode review history: %w", err)
	}

	n, err := r.client.CardState.Update().
		Where(cardstate.LearnerID(card.LearnerID), cardstate.ItemID(card.ItemID)).
		SetEaseFactor(card.EaseFactor).
		SetInterval(card.Interval).
		SetRepetition(card.Repetition).
		SetNextReviewDate(card.NextReviewDate).
		SetNillableLastReviewDate(card.LastReviewDate).
		SetReviewHistory(history).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.CardState.Create().
		SetLearnerID(card.LearnerID).
		SetItemID(card.ItemID).
		SetEaseFactor(card.EaseFactor).
		SetInterval(card.Interval).
		SetRepetition(card.Repetition).
		SetNextReviewDate(card.NextReviewDate).
		SetNillableLastReviewDate(card.LastReviewDate).
		SetReviewHistory(history).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

// ListByLearner returns every card the learner owns, in item order.
func (r *CardRepo) ListByLearner(ctx context.Context, learnerID string) ([]sm2.Card, error) {
	rows, err := r.client.CardState.Query().
		Where(cardstate.LearnerID(learnerID)).
		Order(ent.Asc(cardstate.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	cards := make([]sm2.Card, 0, len(rows))
	for _, row := range rows {
		c, err := cardFromRow(row)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	return cards, nil
}

func cardFromRow(row *ent.CardState) (*sm2.Card, error) {
	c := &sm2.Card{
		LearnerID:      row.LearnerID,
		ItemID:         row.ItemID,
		EaseFactor:     row.EaseFactor,
		Interval:       row.Interval,
		Repetition:     row.Repetition,
		NextReviewDate: row.NextReviewDate,
		LastReviewDate: row.LastReviewDate,
	}
	if len(row.ReviewHistory) > 0 {
		if err := fromJSONMaps(row.ReviewHistory, &c.History); err != nil {
			return nil, fmt.Errorf("decode review history: %w", err)
		}
		c.LastQuality = c.History[len(c.History)-1].Quality
	}
	return c, nil
}
