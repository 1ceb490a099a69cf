// Package policy holds the tunable heuristic constants of the engine.
// These values are pedagogy policy, not derived quantities; they can be
// overridden from a JSON file without touching the algorithms.
package policy

// Policy carries every tunable threshold used by the engine.
type Policy struct {
	// Daily review load heuristics.
	MaxNewCardsPerDay    int     `json:"max_new_cards_per_day"`
	MaxReviewCardsPerDay int     `json:"max_review_cards_per_day"`
	NewCardMinutes       float64 `json:"new_card_minutes"`
	ReviewCardMinutes    float64 `json:"review_card_minutes"`

	// Strength/weakness qualification.
	StrengthThreshold float64 `json:"strength_threshold"`
	WeaknessThreshold float64 `json:"weakness_threshold"`
	MinTopicAttempts  int     `json:"min_topic_attempts"`
	TopicListSize     int     `json:"topic_list_size"`

	// Difficulty adjustment band.
	TargetAccuracy   float64 `json:"target_accuracy"`
	AccuracyBand     float64 `json:"accuracy_band"`
	MinAdjustSamples int     `json:"min_adjust_samples"`

	// Path generation and pacing.
	QuestionsPerDay   int `json:"questions_per_day"`
	PathQuestionCount int `json:"path_question_count"`
	PathMinDifficulty int `json:"path_min_difficulty"`
	PathMaxDifficulty int `json:"path_max_difficulty"`
}

// Default returns the engine's stock policy.
func Default() Policy {
	return Policy{
		MaxNewCardsPerDay:    20,
		MaxReviewCardsPerDay: 30,
		NewCardMinutes:       1.5,
		ReviewCardMinutes:    0.5,

		StrengthThreshold: 70,
		WeaknessThreshold: 60,
		MinTopicAttempts:  5,
		TopicListSize:     3,

		TargetAccuracy:   72.5,
		AccuracyBand:     10,
		MinAdjustSamples: 10,

		QuestionsPerDay:   15,
		PathQuestionCount: 50,
		PathMinDifficulty: 5,
		PathMaxDifficulty: 8,
	}
}
