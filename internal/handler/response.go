package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// Фиксированные сообщения стандартного конверта ошибок
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "Internal Server Error",
}

// StatusMessage возвращает фиксированное сообщение для статуса ошибки
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// ErrorResponse отправляет стандартный конверт ошибки:
// {"success": false, "error": <код>, "message": <фиксированная строка>}.
// Любой путь с ошибкой отвечает этим конвертом, никогда голым статусом.
func ErrorResponse(c *gin.Context, status int) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": StatusMessage(status),
	})
}

// AbortErrorResponse отправляет конверт ошибки и прерывает цепочку обработчиков
func AbortErrorResponse(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": StatusMessage(status),
	})
}

// handleServiceError транслирует ошибки сервисного слоя в HTTP статусы:
// ErrInvalidInput -> 400, ErrNotFound -> 404, ErrDependency -> 422,
// все прочее -> 500 с записью в лог
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrDependency):
		ErrorResponse(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: unexpected error in handler: %v", err)
		ErrorResponse(c, http.StatusInternalServerError)
	}
}
