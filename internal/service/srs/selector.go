package srs

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// EligibilitySelector собирает список вопросов для сессии.
// Только чтение: ни записи расписания, ни настройки не изменяются.
type EligibilitySelector struct {
	questionRepo repository.QuestionRepo
	settingsRepo repository.SettingsRepo
}

// NewEligibilitySelector создает новый селектор вопросов
func NewEligibilitySelector(questionRepo repository.QuestionRepo, settingsRepo repository.SettingsRepo) *EligibilitySelector {
	return &EligibilitySelector{
		questionRepo: questionRepo,
		settingsRepo: settingsRepo,
	}
}

// Select возвращает упорядоченный список вопросов сессии.
//
// Для категории вступительного теста берётся вся категория без
// фильтрации. Для обычной категории список состоит из новых вопросов
// (без SRS-записи, с учётом уровня и лимита newPerSession), за
// которыми идут вопросы к повторению (срок наступил к моменту now,
// самые давние первыми, лимит maxReviewPerSession).
//
// Пустой список превращается в apperrors.ErrNoQuestions.
func (s *EligibilitySelector) Select(ctx context.Context, userID uint, category *entity.Category, now int64) ([]entity.Question, error) {
	if category.IsPlacement {
		questions, err := s.questionRepo.ByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return nil, apperrors.ErrNoQuestions
		}
		return questions, nil
	}

	newLimit := entity.DefaultNewPerSession
	reviewLimit := entity.DefaultMaxReview
	level := entity.LevelUnassigned

	settings, err := s.settingsRepo.Get(ctx, userID, category.LanguageID)
	switch {
	case err == nil:
		newLimit = settings.NewPerSession
		reviewLimit = settings.MaxReviewPerSession
		level = settings.LanguageLevel
	case errors.Is(err, apperrors.ErrNotFound):
		// Настроек нет (пользователь старше каталога языков), работаем
		// с умолчаниями
		log.Printf("[Selector] Настройки не найдены: user=%d language=%d, умолчания", userID, category.LanguageID)
	default:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	newQuestions, err := s.questionRepo.NewForUser(ctx, userID, category.ID, level, newLimit)
	if err != nil {
		return nil, err
	}

	dueQuestions, err := s.questionRepo.DueForUser(ctx, userID, category.ID, level, now, reviewLimit)
	if err != nil {
		return nil, err
	}

	questions := make([]entity.Question, 0, len(newQuestions)+len(dueQuestions))
	questions = append(questions, newQuestions...)
	questions = append(questions, dueQuestions...)

	if len(questions) == 0 {
		return nil, apperrors.ErrNoQuestions
	}
	return questions, nil
}
