package repository

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
)

// SettingsRepo определяет методы для работы с настройками пользователя по языкам
type SettingsRepo interface {
	// Get возвращает настройки пользователя для языка
	Get(ctx context.Context, userID, languageID uint) (*entity.UserLanguageSettings, error)

	// ListByUser возвращает настройки пользователя по всем языкам
	ListByUser(ctx context.Context, userID uint) ([]entity.UserLanguageSettings, error)

	// Update сохраняет изменённые лимиты сессии
	Update(ctx context.Context, settings *entity.UserLanguageSettings) error

	// SetLevel присваивает пользователю уровень языка (результат вступительного теста)
	SetLevel(ctx context.Context, userID, languageID uint, level int) error
}
