package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/domain/repository"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// AllCategories — сентинел "без ограничения по категории" для розыгрыша
const AllCategories uint = 0

// QuizService выбирает следующий вопрос для игровой сессии.
// Сессия хранится на клиенте: сервер получает список уже разыгранных ID.
type QuizService struct {
	questionRepo repository.QuestionRepository
	rng          *rand.Rand
}

// NewQuizService создает новый сервис розыгрыша вопросов
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NextQuestion выбирает равновероятно случайный вопрос из заданной категории
// (AllCategories — из всех), исключая уже разыгранные ID.
// Сначала строится отфильтрованный список кандидатов, затем выполняется один
// розыгрыш: цикл с повторными попытками не используется, выбор всегда завершается.
// Когда кандидатов не осталось, возвращается (nil, nil) — категория исчерпана.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var (
		candidates []entity.Question
		err        error
	)
	if categoryID == AllCategories {
		candidates, err = s.questionRepo.GetAll()
	} else {
		candidates, err = s.questionRepo.GetByCategory(categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load quiz candidates: %v", apperrors.ErrDependency, err)
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(candidates))
	for _, question := range candidates {
		if _, ok := seen[question.ID]; !ok {
			remaining = append(remaining, question)
		}
	}

	if len(remaining) == 0 {
		return nil, nil
	}

	question := remaining[s.rng.Intn(len(remaining))]
	return &question, nil
}
