package srs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/codequiz-api/internal/domain/repository"
)

// PlacementAssignor переводит результат вступительного теста в уровень
// языка и сохраняет его в настройках пользователя
type PlacementAssignor struct {
	config       *Config
	settingsRepo repository.SettingsRepo
	cacheRepo    repository.CacheRepo
}

// NewPlacementAssignor создает новый компонент присвоения уровня
func NewPlacementAssignor(config *Config, settingsRepo repository.SettingsRepo, cacheRepo repository.CacheRepo) *PlacementAssignor {
	return &PlacementAssignor{
		config:       config,
		settingsRepo: settingsRepo,
		cacheRepo:    cacheRepo,
	}
}

// LevelForScore переводит число правильных ответов в уровень 1..3.
// Ноль правильных попадает в нижнюю границу и тоже даёт уровень 1.
func (a *PlacementAssignor) LevelForScore(correct int) int {
	switch {
	case correct <= a.config.PlacementJuniorMax:
		return 1
	case correct <= a.config.PlacementMiddleMax:
		return 2
	default:
		return 3
	}
}

// Assign вычисляет уровень по результату теста и записывает его в
// настройки пользователя для языка. Возвращает присвоенный уровень.
func (a *PlacementAssignor) Assign(ctx context.Context, userID, languageID uint, correct int) (int, error) {
	level := a.LevelForScore(correct)

	if err := a.settingsRepo.SetLevel(ctx, userID, languageID, level); err != nil {
		return 0, fmt.Errorf("failed to persist language level: %w", err)
	}

	// Короткоживущая отметка о смене уровня, клиент читает её на экране
	// результатов даже после переподключения
	key := fmt.Sprintf("placement:level:%d:%d", userID, languageID)
	if err := a.cacheRepo.Set(ctx, key, fmt.Sprintf("%d", level), 10*time.Minute); err != nil {
		log.Printf("[Placement] Не удалось закэшировать уровень: %v", err)
	}

	log.Printf("[Placement] Присвоен уровень %d: user=%d language=%d correct=%d", level, userID, languageID, correct)
	return level, nil
}
