package service

import (
	"context"
	"fmt"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// SettingsService управляет настройками пользователя по языкам
type SettingsService struct {
	settingsRepo repository.SettingsRepo
}

// NewSettingsService создает новый сервис настроек
func NewSettingsService(settingsRepo repository.SettingsRepo) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get возвращает настройки пользователя для языка
func (s *SettingsService) Get(ctx context.Context, userID, languageID uint) (*entity.UserLanguageSettings, error) {
	return s.settingsRepo.Get(ctx, userID, languageID)
}

// List возвращает настройки пользователя по всем языкам
func (s *SettingsService) List(ctx context.Context, userID uint) ([]entity.UserLanguageSettings, error) {
	return s.settingsRepo.ListByUser(ctx, userID)
}

// Update меняет лимиты сессии. Значения вне границ отклоняются до
// записи в хранилище.
func (s *SettingsService) Update(ctx context.Context, userID, languageID uint, newPerSession, maxReviewPerSession int) (*entity.UserLanguageSettings, error) {
	if newPerSession < 0 || newPerSession > entity.MaxNewPerSession {
		return nil, fmt.Errorf("%w: new_per_session must be between 0 and %d", apperrors.ErrValidation, entity.MaxNewPerSession)
	}
	if maxReviewPerSession < 0 || maxReviewPerSession > entity.MaxReviewPerSession {
		return nil, fmt.Errorf("%w: max_review_per_session must be between 0 and %d", apperrors.ErrValidation, entity.MaxReviewPerSession)
	}

	settings, err := s.settingsRepo.Get(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}

	settings.NewPerSession = newPerSession
	settings.MaxReviewPerSession = maxReviewPerSession
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
