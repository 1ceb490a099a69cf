package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyObjectKeepsDefaults(t *testing.T) {
	p, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestParse_OverridesSingleField(t *testing.T) {
	p, err := Parse([]byte(`{"questions_per_day": 25}`))
	require.NoError(t, err)
	assert.Equal(t, 25, p.QuestionsPerDay)
	assert.Equal(t, Default().MaxNewCardsPerDay, p.MaxNewCardsPerDay,
		"fields absent from the override must keep their defaults")
}

func TestParse_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown field", `{"cheat_mode": true}`},
		{"out of range", `{"target_accuracy": 250}`},
		{"wrong type", `{"questions_per_day": "lots"}`},
		{"not JSON", `questions_per_day: 10`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/policy.json")
	require.Error(t, err)
}
