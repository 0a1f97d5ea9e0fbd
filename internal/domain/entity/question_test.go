package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

func validQuestion() *Question {
	return &Question{
		Question:   "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?",
		Answer:     "Apollo 13",
		Category:   5,
		Difficulty: 4,
	}
}

func TestQuestion_Validate_ValidQuestion(t *testing.T) {
	question := validQuestion()

	require.NoError(t, question.Validate())
}

func TestQuestion_Validate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{name: "empty question text", mutate: func(q *Question) { q.Question = "" }},
		{name: "whitespace question text", mutate: func(q *Question) { q.Question = "   " }},
		{name: "empty answer", mutate: func(q *Question) { q.Answer = "" }},
		{name: "zero category", mutate: func(q *Question) { q.Category = 0 }},
		{name: "zero difficulty", mutate: func(q *Question) { q.Difficulty = 0 }},
		{name: "negative difficulty", mutate: func(q *Question) { q.Difficulty = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := validQuestion()
			tt.mutate(question)

			err := question.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidInput),
				"Ошибка валидации должна оборачивать ErrInvalidInput")
		})
	}
}

func TestQuestion_MatchesText_CaseInsensitive(t *testing.T) {
	question := validQuestion()

	// Поиск "tom" должен находить "Tom Hanks"
	assert.True(t, question.MatchesText("tom"))
	assert.True(t, question.MatchesText("TOM"))
	assert.True(t, question.MatchesText("Oscar"))
	assert.True(t, question.MatchesText("oscar"))

	assert.False(t, question.MatchesText("penicillin"))
}
