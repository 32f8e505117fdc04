package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// CatalogRepo реализует репозиторий каталога поверх PostgreSQL
type CatalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo создает новый репозиторий каталога
func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Languages возвращает все языки, отсортированные по имени
func (r *CatalogRepo) Languages(ctx context.Context) ([]entity.Language, error) {
	var langs []entity.Language
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&langs).Error; err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return langs, nil
}

// GetLanguage возвращает язык по ID
func (r *CatalogRepo) GetLanguage(ctx context.Context, id uint) (*entity.Language, error) {
	var lang entity.Language
	err := r.db.WithContext(ctx).First(&lang, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get language: %w", err)
	}
	return &lang, nil
}

// CategoriesByLanguage возвращает категории языка с числом вопросов в каждой
func (r *CatalogRepo) CategoriesByLanguage(ctx context.Context, languageID uint) ([]repository.CategoryCount, error) {
	type row struct {
		entity.Category
		QuestionCount int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.category_id = categories.id").
		Where("categories.language_id = ?", languageID).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]repository.CategoryCount, 0, len(rows))
	for _, rw := range rows {
		result = append(result, repository.CategoryCount{
			Category:      rw.Category,
			QuestionCount: rw.QuestionCount,
		})
	}
	return result, nil
}

// GetCategory возвращает категорию по ID
func (r *CatalogRepo) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.db.WithContext(ctx).First(&cat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &cat, nil
}

// PlacementCategory возвращает категорию вступительного теста языка
func (r *CatalogRepo) PlacementCategory(ctx context.Context, languageID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.db.WithContext(ctx).
		Where("language_id = ? AND is_placement = TRUE", languageID).
		First(&cat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get placement category: %w", err)
	}
	return &cat, nil
}

// CreateLanguage сохраняет язык (используется импортёром каталога)
func (r *CatalogRepo) CreateLanguage(ctx context.Context, lang *entity.Language) error {
	if err := r.db.WithContext(ctx).Create(lang).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: language %q already exists", apperrors.ErrConflict, lang.Name)
		}
		return fmt.Errorf("failed to create language: %w", err)
	}
	return nil
}

// CreateCategory сохраняет категорию (используется импортёром каталога)
func (r *CatalogRepo) CreateCategory(ctx context.Context, cat *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrConflict, cat.Name)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
