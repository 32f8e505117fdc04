package service

import (
	"context"
	"fmt"

	"github.com/yourusername/codequiz-api/internal/domain/repository"
)

// CategoryStats — прогресс пользователя по одной категории
type CategoryStats struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        int64  `json:"total"`
	Learned      int64  `json:"learned"`
	InProgress   int64  `json:"in_progress"`
	Unlearned    int64  `json:"unlearned"`
}

// StatsService считает статистику изучения по категориям и языкам.
// Выученным считается вопрос с интервалом повторения не меньше
// learnedIntervalDays.
type StatsService struct {
	questionRepo        repository.QuestionRepo
	scheduleRepo        repository.ScheduleRepo
	catalogRepo         repository.CatalogRepo
	learnedIntervalDays int
}

// NewStatsService создает новый сервис статистики
func NewStatsService(questionRepo repository.QuestionRepo, scheduleRepo repository.ScheduleRepo, catalogRepo repository.CatalogRepo, learnedIntervalDays int) *StatsService {
	return &StatsService{
		questionRepo:        questionRepo,
		scheduleRepo:        scheduleRepo,
		catalogRepo:         catalogRepo,
		learnedIntervalDays: learnedIntervalDays,
	}
}

// CategoryStats возвращает прогресс пользователя по категории
func (s *StatsService) CategoryStats(ctx context.Context, userID, categoryID uint) (*CategoryStats, error) {
	category, err := s.catalogRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	total, err := s.questionRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	tracked, err := s.scheduleRepo.CountTracked(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	learned, err := s.scheduleRepo.CountWithMinInterval(ctx, userID, categoryID, s.learnedIntervalDays)
	if err != nil {
		return nil, err
	}

	return &CategoryStats{
		CategoryID:   categoryID,
		CategoryName: category.Name,
		Total:        total,
		Learned:      learned,
		InProgress:   tracked - learned,
		Unlearned:    total - tracked,
	}, nil
}

// LanguageStats возвращает прогресс пользователя по всем обычным
// категориям языка (категория вступительного теста не учитывается)
func (s *StatsService) LanguageStats(ctx context.Context, userID, languageID uint) ([]CategoryStats, error) {
	categories, err := s.catalogRepo.CategoriesByLanguage(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	stats := make([]CategoryStats, 0, len(categories))
	for _, cc := range categories {
		if cc.Category.IsPlacement {
			continue
		}
		cs, err := s.CategoryStats(ctx, userID, cc.Category.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *cs)
	}
	return stats, nil
}
