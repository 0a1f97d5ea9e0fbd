package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/service"
)

func newTestQuizHandler(questionRepo *MockQuestionRepoForHandler) *QuizHandler {
	return NewQuizHandler(service.NewQuizService(questionRepo))
}

func TestPlayQuiz_ValidationErrors(t *testing.T) {
	handler := &QuizHandler{} // nil service — OK для validation tests

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty body", body: nil},
		{name: "missing quiz_category", body: map[string]interface{}{"previous_questions": []uint{}}},
		{name: "missing previous_questions", body: map[string]interface{}{"quiz_category": map[string]interface{}{"id": 0, "type": "All"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/quizzes", tt.body)
			handler.PlayQuiz(c)

			requireErrorEnvelope(t, w, http.StatusBadRequest, "Bad Request")
		})
	}
}

func TestPlayQuiz_AllCategories(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	questionRepo.On("GetAll").Return(seedQuestions(5), nil)

	handler := newTestQuizHandler(questionRepo)

	c, w := newTestGinContext(http.MethodPost, "/api/quizzes", map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "All"},
	})
	handler.PlayQuiz(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	require.Contains(t, resp, "question")
}

func TestPlayQuiz_ExcludesPreviousQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	questionRepo.On("GetByCategory", uint(3)).Return([]entity.Question{
		{ID: 13, Category: 3}, {ID: 14, Category: 3}, {ID: 15, Category: 3},
	}, nil)

	handler := newTestQuizHandler(questionRepo)

	c, w := newTestGinContext(http.MethodPost, "/api/quizzes", map[string]interface{}{
		"previous_questions": []uint{13, 14},
		"quiz_category":      map[string]interface{}{"id": 3, "type": "Geography"},
	})
	handler.PlayQuiz(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	question, ok := resp["question"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(15), question["id"])
	assert.Equal(t, float64(3), question["category"])
}

// Исчерпанная категория — 200 success без поля question
func TestPlayQuiz_ExhaustedCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepoForHandler)
	questionRepo.On("GetByCategory", uint(3)).Return([]entity.Question{
		{ID: 13, Category: 3}, {ID: 14, Category: 3},
	}, nil)

	handler := newTestQuizHandler(questionRepo)

	c, w := newTestGinContext(http.MethodPost, "/api/quizzes", map[string]interface{}{
		"previous_questions": []uint{13, 14},
		"quiz_category":      map[string]interface{}{"id": 3, "type": "Geography"},
	})
	handler.PlayQuiz(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "question")
}
