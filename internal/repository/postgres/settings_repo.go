package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// SettingsRepo реализует репозиторий настроек поверх PostgreSQL
type SettingsRepo struct {
	db *gorm.DB
}

// NewSettingsRepo создает новый репозиторий настроек
func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get возвращает настройки пользователя для языка
func (r *SettingsRepo) Get(ctx context.Context, userID, languageID uint) (*entity.UserLanguageSettings, error) {
	var settings entity.UserLanguageSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// ListByUser возвращает настройки пользователя по всем языкам
func (r *SettingsRepo) ListByUser(ctx context.Context, userID uint) ([]entity.UserLanguageSettings, error) {
	var settings []entity.UserLanguageSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("language_id ASC").
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// Update сохраняет изменённые лимиты сессии
func (r *SettingsRepo) Update(ctx context.Context, settings *entity.UserLanguageSettings) error {
	result := r.db.WithContext(ctx).
		Model(&entity.UserLanguageSettings{}).
		Where("user_id = ? AND language_id = ?", settings.UserID, settings.LanguageID).
		Updates(map[string]interface{}{
			"new_per_session":        settings.NewPerSession,
			"max_review_per_session": settings.MaxReviewPerSession,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetLevel присваивает пользователю уровень языка
func (r *SettingsRepo) SetLevel(ctx context.Context, userID, languageID uint, level int) error {
	result := r.db.WithContext(ctx).
		Model(&entity.UserLanguageSettings{}).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		Update("language_level", level)
	if result.Error != nil {
		return fmt.Errorf("failed to set language level: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
