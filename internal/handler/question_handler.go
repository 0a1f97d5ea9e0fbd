package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/handler/dto"
	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
	"github.com/yourusername/question-service/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// parsePageQuery извлекает параметр ?page (по умолчанию 1).
// Нечисловое или меньшее 1 значение — 400; при ошибке возвращает ok=false,
// ответ уже отправлен.
func parsePageQuery(c *gin.Context) (int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		ErrorResponse(c, http.StatusBadRequest)
		return 0, false
	}
	return page, true
}

// ListQuestions возвращает страницу вопросов со справочником категорий
// GET /api/questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	questionPage, err := h.questionService.ListQuestions(page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(
		questionPage.Questions,
		questionPage.Total,
		questionPage.Categories,
	))
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Category   uint   `json:"category" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"required,min=1"`
}

// CreateQuestion создает новый вопрос и возвращает обновленную первую страницу
// POST /api/questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	question := &entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.questionService.CreateQuestion(question); err != nil {
		handleServiceError(c, err)
		return
	}

	firstPage, total, err := h.questionService.FirstPage()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCreateQuestionResponse(question.ID, firstPage, total))
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /api/questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ErrorResponse(c, http.StatusNotFound)
			return
		}
		// Существующий вопрос не удалось удалить — отдельное сообщение, как
		// и формат ответа, закреплено контрактом
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   http.StatusInternalServerError,
			"message": "Failed to Delete Question",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewDeleteQuestionResponse(questionID))
}

// SearchQuestionsRequest представляет запрос на поиск вопросов
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required"`
}

// SearchQuestions возвращает вопросы, содержащие подстроку searchTerm
// POST /api/questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Отсутствующий и пустой searchTerm равнозначны
		ErrorResponse(c, http.StatusBadRequest)
		return
	}

	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	questions, total, err := h.questionService.SearchQuestions(req.SearchTerm, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchQuestionsResponse(questions, total))
}

// GetQuestionsByCategory возвращает вопросы заданной категории
// GET /api/categories/:id/questions
func (h *QuestionHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	questions, total, categoryType, err := h.questionService.QuestionsByCategory(categoryID, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(questions, total, categoryType))
}
