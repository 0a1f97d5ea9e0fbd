package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/question-service/internal/domain/entity"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetAll возвращает все вопросы, отсортированные по ID
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Create сохраняет новый вопрос, ID назначает база данных
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// Delete удаляет вопрос по ID.
// Повторное удаление того же ID возвращает ErrNotFound, а не успех.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SearchByText возвращает вопросы, текст которых содержит подстроку term
// без учета регистра (ILIKE)
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает вопросы заданной категории, отсортированные по ID
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
