package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam_ValidID(t *testing.T) {
	router := gin.New()

	var got uint
	router.DELETE("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		got = c.MustGet("questionID").(uint)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/questions/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), got)
}

func TestExtractUintParam_InvalidID(t *testing.T) {
	router := gin.New()
	router.DELETE("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		t.Fatal("handler should not be reached for invalid id")
	})

	for _, id := range []string{"abc", "-5", "1.5"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodDelete, "/questions/"+id, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, float64(http.StatusBadRequest), resp["error"])
		assert.Equal(t, "Bad Request", resp["message"])
	}
}
