package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

func TestSettingsUpdateWithinBounds(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 2, NewPerSession: 10, MaxReviewPerSession: 10})

	svc := NewSettingsService(repo)
	settings, err := svc.Update(context.Background(), 1, 2, 25, 80)
	require.NoError(t, err)
	assert.Equal(t, 25, settings.NewPerSession)
	assert.Equal(t, 80, settings.MaxReviewPerSession)
	require.Len(t, repo.updated, 1)
}

func TestSettingsUpdateZeroIsAllowed(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 2, NewPerSession: 10, MaxReviewPerSession: 10})

	svc := NewSettingsService(repo)
	settings, err := svc.Update(context.Background(), 1, 2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, settings.NewPerSession)
	assert.Equal(t, 0, settings.MaxReviewPerSession)
}

func TestSettingsUpdateOutOfBoundsRejectedBeforePersist(t *testing.T) {
	repo := newMockSettingsRepo()
	repo.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 2, NewPerSession: 10, MaxReviewPerSession: 10})
	svc := NewSettingsService(repo)

	cases := []struct{ newPer, maxReview int }{
		{-1, 10},
		{51, 10},
		{10, -1},
		{10, 101},
	}
	for _, tc := range cases {
		_, err := svc.Update(context.Background(), 1, 2, tc.newPer, tc.maxReview)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "new=%d review=%d", tc.newPer, tc.maxReview)
	}

	// Хранилище не трогали
	assert.Empty(t, repo.updated)
}

func TestSettingsUpdateUnknownLanguage(t *testing.T) {
	svc := NewSettingsService(newMockSettingsRepo())
	_, err := svc.Update(context.Background(), 1, 99, 10, 10)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
