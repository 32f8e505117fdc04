package repository

import (
	"context"
	"time"
)

// CacheRepo определяет методы для работы с кэшем
type CacheRepo interface {
	// Set сохраняет значение по ключу с заданным временем жизни
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get возвращает значение по ключу
	Get(ctx context.Context, key string) (string, error)

	// Delete удаляет значения по ключам
	Delete(ctx context.Context, keys ...string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// SetNX устанавливает значение, только если ключ ещё не существует.
	// Возвращает true, если значение было установлено (блокировка взята).
	SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error)

	// SetJSON сериализует значение в JSON и сохраняет по ключу
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error

	// GetJSON возвращает значение по ключу и десериализует его из JSON
	GetJSON(ctx context.Context, key string, dest interface{}) error
}
