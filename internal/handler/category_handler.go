package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/question-service/internal/handler/dto"
	"github.com/yourusername/question-service/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories возвращает справочник категорий {id: название}
// GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.CategoryMap()
	if err != nil {
		// Ошибка хранилища на чтении справочника — 422
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoriesResponse(categories))
}
