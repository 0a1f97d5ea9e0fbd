package repository

import (
	"github.com/yourusername/question-service/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с хранилищем вопросов
type QuestionRepository interface {
	// GetAll возвращает все вопросы, отсортированные по ID
	GetAll() ([]entity.Question, error)

	// GetByID возвращает вопрос по ID.
	// Возвращает apperrors.ErrNotFound, если вопроса нет.
	GetByID(id uint) (*entity.Question, error)

	// Create сохраняет новый вопрос; ID назначается базой данных
	Create(question *entity.Question) error

	// Delete удаляет вопрос по ID.
	// Возвращает apperrors.ErrNotFound, если удалять нечего.
	Delete(id uint) error

	// SearchByText возвращает вопросы, текст которых содержит подстроку term
	// без учета регистра, отсортированные по ID
	SearchByText(term string) ([]entity.Question, error)

	// GetByCategory возвращает вопросы заданной категории, отсортированные по ID
	GetByCategory(categoryID uint) ([]entity.Question, error)

	// Count возвращает общее количество вопросов
	Count() (int64, error)
}
