package srs

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	assignor := NewPlacementAssignor(DefaultConfig(), newMockSettingsRepo(), newMockCacheRepo())

	cases := []struct {
		correct int
		level   int
	}{
		{0, 1}, // ноль правильных тоже попадает в нижний уровень
		{3, 1},
		{6, 1},
		{7, 2},
		{12, 2},
		{13, 3},
		{15, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, assignor.LevelForScore(tc.correct), "correct=%d", tc.correct)
	}
}

func TestAssignPersistsLevel(t *testing.T) {
	settings := newMockSettingsRepo()
	cache := newMockCacheRepo()
	assignor := NewPlacementAssignor(DefaultConfig(), settings, cache)

	level, err := assignor.Assign(context.Background(), 1, 5, 13)
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	saved, ok := settings.level(1, 5)
	require.True(t, ok)
	assert.Equal(t, 3, saved)

	// Отметка о смене уровня доступна в кэше
	cached, err := cache.Get(context.Background(), "placement:level:1:5")
	require.NoError(t, err)
	assert.Equal(t, "3", cached)
}

func TestAssignPropagatesStoreError(t *testing.T) {
	settings := newMockSettingsRepo()
	settings.setLevelErr = fmt.Errorf("db down")
	assignor := NewPlacementAssignor(DefaultConfig(), settings, newMockCacheRepo())

	_, err := assignor.Assign(context.Background(), 1, 5, 10)
	assert.Error(t, err)
}
