package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены
	// (неизвестный вопрос/категория, пустая страница, ноль результатов поиска).
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput используется для некорректных входных данных
	// (отсутствующие поля, пустая строка поиска, неверная пагинация).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDependency используется, когда хранилище вернуло ошибку на корректный
	// по смыслу запрос чтения. Транслируется в 422 Unprocessable Entity.
	ErrDependency = errors.New("dependency failure")
)
