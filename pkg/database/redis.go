package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/codequiz-api/internal/config"
)

// NewRedisClient создает универсальный клиент Redis в зависимости от
// режима в конфигурации (single, sentinel, cluster)
func NewRedisClient(cfg *config.RedisConfig) (redis.UniversalClient, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 && cfg.Addr != "" {
		addrs = strings.Split(cfg.Addr, ",")
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no redis addresses configured")
	}

	var client redis.UniversalClient

	switch strings.ToLower(cfg.Mode) {
	case "sentinel":
		if cfg.MasterName == "" {
			return nil, fmt.Errorf("redis sentinel mode requires master_name")
		}
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:    cfg.MasterName,
			SentinelAddrs: addrs,
			Password:      cfg.Password,
			DB:            cfg.DB,
		})
	case "cluster":
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    addrs,
			Password: cfg.Password,
		})
	default: // single
		client = redis.NewClient(&redis.Options{
			Addr:     addrs[0],
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Printf("[Database] Подключение к Redis установлено (режим: %s)", cfg.Mode)
	return client, nil
}
