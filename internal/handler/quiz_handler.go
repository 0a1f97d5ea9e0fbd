package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-service/internal/handler/dto"
	"github.com/yourusername/question-service/internal/service"
)

// QuizHandler обрабатывает розыгрыш вопросов
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик розыгрыша
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategory — выбранная клиентом категория; ID == 0 означает "все категории"
type QuizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// PlayQuizRequest представляет запрос на следующий вопрос сессии.
// Оба поля обязательны; previous_questions может быть пустым списком —
// этого требует начало новой сессии.
type PlayQuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions *[]uint       `json:"previous_questions" binding:"required"`
}

// PlayQuiz возвращает случайный еще не разыгранный вопрос категории.
// Исчерпанная категория — не ошибка: success без поля question.
// POST /api/quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
