package repository

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
)

// UserRepo определяет методы для работы с хранилищем пользователей
type UserRepo interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *entity.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id uint) (*entity.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByUsername возвращает пользователя по имени
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
