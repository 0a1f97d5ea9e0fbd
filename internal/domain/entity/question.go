package entity

import (
	"fmt"
	"strings"

	apperrors "github.com/yourusername/question-service/internal/pkg/errors"
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:500;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Validate проверяет обязательные поля вопроса перед сохранением.
// Ссылочная целостность поля Category проверяется на уровне сервиса.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("%w: answer is required", apperrors.ErrInvalidInput)
	}
	if q.Category == 0 {
		return fmt.Errorf("%w: category is required", apperrors.ErrInvalidInput)
	}
	if q.Difficulty < 1 {
		return fmt.Errorf("%w: difficulty must be at least 1", apperrors.ErrInvalidInput)
	}
	return nil
}

// MatchesText сообщает, содержит ли текст вопроса подстроку term без учета регистра.
// Основной поиск выполняется через ILIKE в БД; метод используется в логике и тестах.
func (q *Question) MatchesText(term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}
