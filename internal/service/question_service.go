package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/domain/repository"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// QuestionPage представляет одну страницу списка вопросов вместе с
// общим количеством и справочником категорий
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Categories map[uint]string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categories   *CategoryService
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categories *CategoryService) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categories:   categories,
	}
}

// ListQuestions возвращает страницу вопросов (по QuestionsPerPage на страницу).
// Пустая страница считается ErrNotFound — канонический вариант контракта.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrInvalidInput)
	}

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load questions: %v", apperrors.ErrDependency, err)
	}

	paged := PaginateQuestions(questions, page)
	if len(paged) == 0 {
		return nil, fmt.Errorf("%w: page %d has no questions", apperrors.ErrNotFound, page)
	}

	categoryMap, err := s.categories.CategoryMap()
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  paged,
		Total:      len(questions),
		Categories: categoryMap,
	}, nil
}

// CreateQuestion валидирует и сохраняет новый вопрос.
// Ссылка на категорию проверяется явно: вопрос с неизвестной категорией отклоняется.
func (s *QuestionService) CreateQuestion(question *entity.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	if _, err := s.categories.GetCategory(question.Category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown category %d", apperrors.ErrInvalidInput, question.Category)
		}
		return fmt.Errorf("%w: failed to check category: %v", apperrors.ErrDependency, err)
	}

	if err := s.questionRepo.Create(question); err != nil {
		// Неудачная запись трактуется как ошибка клиента: типичная причина —
		// некорректные данные, не прошедшие ограничения схемы
		return fmt.Errorf("%w: failed to create question: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}

// FirstPage возвращает первую страницу вопросов и их общее количество.
// Используется ответом на создание вопроса.
func (s *QuestionService) FirstPage() ([]entity.Question, int, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to load questions: %v", apperrors.ErrDependency, err)
	}
	return PaginateQuestions(questions, 1), len(questions), nil
}

// DeleteQuestion удаляет вопрос по ID.
// Удаление отсутствующего ID возвращает ErrNotFound, удаление не повторяемо.
func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}

// SearchQuestions возвращает страницу вопросов, текст которых содержит term
// без учета регистра, и общее количество вопросов в базе
func (s *QuestionService) SearchQuestions(term string, page int) ([]entity.Question, int, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, fmt.Errorf("%w: search term must not be empty", apperrors.ErrInvalidInput)
	}
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrInvalidInput)
	}

	matches, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: search failed: %v", apperrors.ErrDependency, err)
	}
	if len(matches) == 0 {
		return nil, 0, fmt.Errorf("%w: no questions match %q", apperrors.ErrNotFound, term)
	}

	// total_questions в ответе поиска — общее число вопросов, не число совпадений
	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count questions: %v", apperrors.ErrDependency, err)
	}

	return PaginateQuestions(matches, page), int(total), nil
}

// QuestionsByCategory возвращает страницу вопросов категории, количество
// вопросов в ней и название категории.
// Неизвестная категория — ErrNotFound; пустая категория — пустой список, не ошибка.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) ([]entity.Question, int, string, error) {
	if page < 1 {
		return nil, 0, "", fmt.Errorf("%w: page must be a positive integer", apperrors.ErrInvalidInput)
	}

	category, err := s.categories.GetCategory(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, "", fmt.Errorf("%w: unknown category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, 0, "", fmt.Errorf("%w: failed to load category: %v", apperrors.ErrDependency, err)
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, 0, "", fmt.Errorf("%w: failed to load questions: %v", apperrors.ErrDependency, err)
	}

	return PaginateQuestions(questions, page), len(questions), category.Type, nil
}

// AllQuestions возвращает все вопросы, отсортированные по ID.
// Используется экспортом.
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load questions: %v", apperrors.ErrDependency, err)
	}
	return questions, nil
}
