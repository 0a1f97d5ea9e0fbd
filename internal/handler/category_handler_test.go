package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/question-service/internal/domain/entity"
	"github.com/yourusername/question-service/internal/service"
)

func TestGetCategories_Success(t *testing.T) {
	categoryRepo := new(MockCategoryRepoForHandler)
	categoryRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)

	handler := NewCategoryHandler(service.NewCategoryService(categoryRepo))

	c, w := newTestGinContext(http.MethodGet, "/api/categories", nil)
	handler.GetCategories(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	categories, ok := resp["categories"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Art", categories["2"])
}

// Ошибка хранилища на чтении справочника — 422, не 500
func TestGetCategories_StoreErrorIs422(t *testing.T) {
	categoryRepo := new(MockCategoryRepoForHandler)
	categoryRepo.On("GetAll").Return(nil, errors.New("connection refused"))

	handler := NewCategoryHandler(service.NewCategoryService(categoryRepo))

	c, w := newTestGinContext(http.MethodGet, "/api/categories", nil)
	handler.GetCategories(c)

	requireErrorEnvelope(t, w, http.StatusUnprocessableEntity, "Unprocessable Entity")
}
