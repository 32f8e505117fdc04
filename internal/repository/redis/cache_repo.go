package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// CacheRepo реализует кэш поверх Redis
type CacheRepo struct {
	client redis.UniversalClient
}

// NewCacheRepo создает новый репозиторий кэша
func NewCacheRepo(client redis.UniversalClient) *CacheRepo {
	return &CacheRepo{client: client}
}

// Set сохраняет значение по ключу с заданным временем жизни
func (r *CacheRepo) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// Get возвращает значение по ключу
func (r *CacheRepo) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return value, nil
}

// Delete удаляет значения по ключам
func (r *CacheRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}

// Exists проверяет существование ключа
func (r *CacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cache key %s: %w", key, err)
	}
	return n > 0, nil
}

// SetNX устанавливает значение, только если ключ ещё не существует
func (r *CacheRepo) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, value, expiration).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx cache key %s: %w", key, err)
	}
	return ok, nil
}

// SetJSON сериализует значение в JSON и сохраняет по ключу
func (r *CacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	return r.Set(ctx, key, string(data), expiration)
}

// GetJSON возвращает значение по ключу и десериализует его из JSON
func (r *CacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}
	return nil
}
