package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния
	// (например, попытка запустить сессию, пока другая ещё активна,
	// или повторная вставка SRS-записи для той же пары вопрос/пользователь).
	ErrConflict = errors.New("resource state conflict")

	// ErrNoQuestions — не ошибка хранилища, а выделенный пустой результат:
	// на сегодня нет ни новых вопросов, ни вопросов к повторению.
	ErrNoQuestions = errors.New("no questions available")
)
