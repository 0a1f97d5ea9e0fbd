package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestIDKey — ключ идентификатора запроса в контексте Gin
const RequestIDKey = "requestID"

// RequestID создает middleware, присваивающее каждому запросу идентификатор.
// Идентификатор клиента сохраняется, отсутствующий — генерируется,
// и в обоих случаях возвращается в ответном заголовке для корреляции логов.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
