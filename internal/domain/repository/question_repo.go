package repository

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
)

// QuestionRepo определяет методы для работы с хранилищем вопросов.
// Все выборки возвращают вопросы с предзагруженными вариантами ответов.
type QuestionRepo interface {
	// GetByID возвращает вопрос по ID
	GetByID(ctx context.Context, id uint) (*entity.Question, error)

	// ByCategory возвращает все вопросы категории (режим вступительного теста)
	ByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)

	// NewForUser возвращает вопросы категории, по которым у пользователя
	// ещё нет SRS-записи. При level > 0 берутся только вопросы со
	// сложностью не выше level. Limit ограничивает размер выборки;
	// limit <= 0 означает пустую выборку.
	NewForUser(ctx context.Context, userID, categoryID uint, level, limit int) ([]entity.Question, error)

	// DueForUser возвращает вопросы категории, срок повторения которых
	// наступил к моменту now (epoch-мс), в порядке возрастания
	// last_review_at. Фильтр по level и limit как в NewForUser.
	DueForUser(ctx context.Context, userID, categoryID uint, level int, now int64, limit int) ([]entity.Question, error)

	// CountByCategory возвращает общее число вопросов в категории
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)

	// CreateBatch сохраняет вопросы вместе с вариантами (импорт каталога)
	CreateBatch(ctx context.Context, questions []entity.Question) error
}
