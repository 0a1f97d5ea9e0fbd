package dto

import (
	"github.com/yourusername/question-service/internal/domain/entity"
)

// CategoriesResponse — ответ на список категорий
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// NewCategoriesResponse создает ответ со справочником категорий
func NewCategoriesResponse(categories map[uint]string) CategoriesResponse {
	return CategoriesResponse{Success: true, Categories: categories}
}

// QuestionListResponse — ответ на постраничный список вопросов
type QuestionListResponse struct {
	Success        bool              `json:"success"`
	TotalQuestions int               `json:"total_questions"`
	Categories     map[uint]string   `json:"categories"`
	Questions      []entity.Question `json:"questions"`
}

// NewQuestionListResponse создает ответ со страницей вопросов
func NewQuestionListResponse(questions []entity.Question, total int, categories map[uint]string) QuestionListResponse {
	return QuestionListResponse{
		Success:        true,
		TotalQuestions: total,
		Categories:     categories,
		Questions:      questions,
	}
}

// CreateQuestionResponse — ответ на создание вопроса: ID созданного вопроса
// плюс обновленная первая страница
type CreateQuestionResponse struct {
	Success        bool              `json:"success"`
	Created        uint              `json:"created"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// NewCreateQuestionResponse создает ответ на создание вопроса
func NewCreateQuestionResponse(createdID uint, firstPage []entity.Question, total int) CreateQuestionResponse {
	return CreateQuestionResponse{
		Success:        true,
		Created:        createdID,
		Questions:      firstPage,
		TotalQuestions: total,
	}
}

// DeleteQuestionResponse — ответ на удаление вопроса
type DeleteQuestionResponse struct {
	Success bool   `json:"success"`
	Deleted uint   `json:"deleted"`
	Message string `json:"message"`
}

// NewDeleteQuestionResponse создает ответ на удаление вопроса
func NewDeleteQuestionResponse(deletedID uint) DeleteQuestionResponse {
	return DeleteQuestionResponse{
		Success: true,
		Deleted: deletedID,
		Message: "Question Deleted",
	}
}

// SearchQuestionsResponse — ответ на поиск вопросов.
// TotalQuestions — общее число вопросов в базе, не число совпадений.
type SearchQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []entity.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// NewSearchQuestionsResponse создает ответ на поиск вопросов
func NewSearchQuestionsResponse(questions []entity.Question, total int) SearchQuestionsResponse {
	return SearchQuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
	}
}

// CategoryQuestionsResponse — ответ на список вопросов категории
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// NewCategoryQuestionsResponse создает ответ на список вопросов категории
func NewCategoryQuestionsResponse(questions []entity.Question, total int, categoryType string) CategoryQuestionsResponse {
	return CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: categoryType,
	}
}

// QuizResponse — ответ розыгрыша: вопрос либо его отсутствие при исчерпании
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question,omitempty"`
}

// NewQuizResponse создает ответ розыгрыша.
// question == nil означает, что категория исчерпана: success без вопроса.
func NewQuizResponse(question *entity.Question) QuizResponse {
	return QuizResponse{Success: true, Question: question}
}
