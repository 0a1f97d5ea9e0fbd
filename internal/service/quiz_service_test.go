package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-service/internal/domain/entity"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// Моки репозиториев определены в question_service_test.go

func TestQuizService_NextQuestion_AllCategories(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(makeQuestions(5), nil)

	svc := NewQuizService(questionRepo)

	question, err := svc.NextQuestion(AllCategories, nil)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.GreaterOrEqual(t, question.ID, uint(1))
	assert.LessOrEqual(t, question.ID, uint(5))
	questionRepo.AssertNotCalled(t, "GetByCategory")
}

func TestQuizService_NextQuestion_SpecificCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	inCategory := []entity.Question{
		{ID: 13, Category: 3},
		{ID: 14, Category: 3},
		{ID: 15, Category: 3},
	}
	questionRepo.On("GetByCategory", uint(3)).Return(inCategory, nil)

	svc := NewQuizService(questionRepo)

	question, err := svc.NextQuestion(3, []uint{13, 14})
	require.NoError(t, err)
	require.NotNil(t, question)
	// Из трех вопросов категории два уже разыграны
	assert.Equal(t, uint(15), question.ID)
	questionRepo.AssertNotCalled(t, "GetAll")
}

// Выбранный вопрос никогда не входит в previous_questions
func TestQuizService_NextQuestion_NeverRepeatsPrevious(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(makeQuestions(10), nil)

	svc := NewQuizService(questionRepo)

	previous := []uint{1, 3, 5, 7, 9}
	excluded := map[uint]struct{}{1: {}, 3: {}, 5: {}, 7: {}, 9: {}}

	for i := 0; i < 100; i++ {
		question, err := svc.NextQuestion(AllCategories, previous)
		require.NoError(t, err)
		require.NotNil(t, question)
		_, isExcluded := excluded[question.ID]
		assert.False(t, isExcluded, "Вопрос %d уже был разыгран", question.ID)
	}
}

// Исчерпание категории — success без вопроса, не ошибка
func TestQuizService_NextQuestion_Exhausted(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetByCategory", uint(3)).Return([]entity.Question{
		{ID: 13, Category: 3},
		{ID: 14, Category: 3},
	}, nil)

	svc := NewQuizService(questionRepo)

	question, err := svc.NextQuestion(3, []uint{13, 14})
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_EmptyCandidateSet(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	// Неизвестная категория дает пустой набор кандидатов — поведение как при исчерпании
	questionRepo.On("GetByCategory", uint(42)).Return([]entity.Question{}, nil)

	svc := NewQuizService(questionRepo)

	question, err := svc.NextQuestion(42, []uint{})
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_StoreError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(nil, errors.New("connection refused"))

	svc := NewQuizService(questionRepo)

	_, err := svc.NextQuestion(AllCategories, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDependency))
}

// За достаточное число розыгрышей выбираются все оставшиеся вопросы
func TestQuizService_NextQuestion_DrawsFromWholeRemainingSet(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(makeQuestions(3), nil)

	svc := NewQuizService(questionRepo)

	seen := make(map[uint]bool)
	for i := 0; i < 200 && len(seen) < 3; i++ {
		question, err := svc.NextQuestion(AllCategories, nil)
		require.NoError(t, err)
		require.NotNil(t, question)
		seen[question.ID] = true
	}

	assert.Len(t, seen, 3, "Все кандидаты должны быть достижимы при розыгрыше")
}
