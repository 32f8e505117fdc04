package service

import (
	"context"
	"strings"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
)

// LanguageCategories — язык вместе с его категориями и числом вопросов
type LanguageCategories struct {
	Language   entity.Language            `json:"language"`
	Categories []repository.CategoryCount `json:"categories"`
}

// CatalogService отдаёт каталог языков и категорий
type CatalogService struct {
	catalogRepo repository.CatalogRepo
}

// NewCatalogService создает новый сервис каталога
func NewCatalogService(catalogRepo repository.CatalogRepo) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// Languages возвращает все языки
func (s *CatalogService) Languages(ctx context.Context) ([]entity.Language, error) {
	return s.catalogRepo.Languages(ctx)
}

// Categories возвращает категории языка с числом вопросов
func (s *CatalogService) Categories(ctx context.Context, languageID uint) ([]repository.CategoryCount, error) {
	return s.catalogRepo.CategoriesByLanguage(ctx, languageID)
}

// Search фильтрует каталог по строке запроса.
//
// Запрос вида "java : collections" разбивается двоеточием на фильтр
// языка и фильтр категории, без двоеточия строка фильтрует только
// язык. Сравнение без учёта регистра, по вхождению подстроки. Пустой
// запрос возвращает весь каталог.
func (s *CatalogService) Search(ctx context.Context, query string) ([]LanguageCategories, error) {
	langFilter := strings.TrimSpace(query)
	catFilter := ""
	if idx := strings.Index(query, ":"); idx >= 0 {
		langFilter = strings.TrimSpace(query[:idx])
		catFilter = strings.TrimSpace(query[idx+1:])
	}
	langFilter = strings.ToLower(langFilter)
	catFilter = strings.ToLower(catFilter)

	languages, err := s.catalogRepo.Languages(ctx)
	if err != nil {
		return nil, err
	}

	var result []LanguageCategories
	for _, lang := range languages {
		if langFilter != "" && !strings.Contains(strings.ToLower(lang.Name), langFilter) {
			continue
		}

		categories, err := s.catalogRepo.CategoriesByLanguage(ctx, lang.ID)
		if err != nil {
			return nil, err
		}

		filtered := make([]repository.CategoryCount, 0, len(categories))
		for _, cc := range categories {
			if catFilter != "" && !strings.Contains(strings.ToLower(cc.Category.Name), catFilter) {
				continue
			}
			filtered = append(filtered, cc)
		}

		if len(filtered) == 0 && catFilter != "" {
			continue
		}
		result = append(result, LanguageCategories{Language: lang, Categories: filtered})
	}
	return result, nil
}
