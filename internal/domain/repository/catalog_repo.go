package repository

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
)

// CategoryCount — категория вместе с числом вопросов в ней
type CategoryCount struct {
	Category      entity.Category
	QuestionCount int64
}

// CatalogRepo определяет методы для чтения каталога языков и категорий
type CatalogRepo interface {
	// Languages возвращает все языки, отсортированные по имени
	Languages(ctx context.Context) ([]entity.Language, error)

	// GetLanguage возвращает язык по ID
	GetLanguage(ctx context.Context, id uint) (*entity.Language, error)

	// CategoriesByLanguage возвращает категории языка вместе с числом
	// вопросов в каждой, отсортированные по имени
	CategoriesByLanguage(ctx context.Context, languageID uint) ([]CategoryCount, error)

	// GetCategory возвращает категорию по ID
	GetCategory(ctx context.Context, id uint) (*entity.Category, error)

	// PlacementCategory возвращает категорию вступительного теста языка
	PlacementCategory(ctx context.Context, languageID uint) (*entity.Category, error)

	// CreateLanguage и CreateCategory используются импортёром каталога
	CreateLanguage(ctx context.Context, lang *entity.Language) error
	CreateCategory(ctx context.Context, cat *entity.Category) error
}
