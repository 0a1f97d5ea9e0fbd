package repository

import (
	"github.com/yourusername/question-service/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с хранилищем категорий
type CategoryRepository interface {
	// GetAll возвращает все категории, отсортированные по ID
	GetAll() ([]entity.Category, error)

	// GetByID возвращает категорию по ID.
	// Возвращает apperrors.ErrNotFound, если категории нет.
	GetByID(id uint) (*entity.Category, error)
}
