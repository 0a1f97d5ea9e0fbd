package service

import (
	"fmt"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/domain/repository"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryMap возвращает отображение ID категории в ее название.
// Используется списком категорий и списком вопросов.
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load categories: %v", apperrors.ErrDependency, err)
	}

	categoryMap := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category.Type
	}
	return categoryMap, nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(id uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(id)
}
