package service

import (
	"github.com/yourusername/question-service/internal/domain/entity"
)

// QuestionsPerPage задает фиксированный размер страницы вопросов
const QuestionsPerPage = 10

// PaginateQuestions возвращает страницу page (нумерация с 1) из упорядоченного
// списка вопросов. Страница за пределами списка дает пустой срез; интерпретация
// пустой страницы (404 или 200) остается за вызывающим кодом.
func PaginateQuestions(questions []entity.Question, page int) []entity.Question {
	if page < 1 {
		return []entity.Question{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []entity.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}
