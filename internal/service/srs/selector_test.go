package srs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

func makeQuestions(ids ...uint) []entity.Question {
	out := make([]entity.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.Question{ID: id})
	}
	return out
}

func TestSelectPlacementTakesWholeCategory(t *testing.T) {
	questions := newMockQuestionRepo()
	questions.byCategory = makeQuestions(1, 2, 3)
	settings := newMockSettingsRepo()
	selector := NewEligibilitySelector(questions, settings)

	category := &entity.Category{ID: 10, LanguageID: 1, IsPlacement: true}
	got, err := selector.Select(context.Background(), 1, category, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// Лимиты и уровень не применяются
	assert.Empty(t, questions.newCalls)
	assert.Empty(t, questions.dueCalls)
}

func TestSelectNormalNewThenDue(t *testing.T) {
	questions := newMockQuestionRepo()
	questions.newQuestions = makeQuestions(1, 2)
	questions.dueQuestions = makeQuestions(3, 4)
	settings := newMockSettingsRepo()
	settings.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 5, NewPerSession: 10, MaxReviewPerSession: 10, LanguageLevel: 2})

	selector := NewEligibilitySelector(questions, settings)
	category := &entity.Category{ID: 10, LanguageID: 5}

	got, err := selector.Select(context.Background(), 1, category, 12345)
	require.NoError(t, err)

	// Новые вопросы идут перед вопросами к повторению
	require.Len(t, got, 4)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
	assert.Equal(t, uint(3), got[2].ID)
	assert.Equal(t, uint(4), got[3].ID)

	require.Len(t, questions.newCalls, 1)
	assert.Equal(t, 2, questions.newCalls[0].level)
	assert.Equal(t, 10, questions.newCalls[0].limit)

	require.Len(t, questions.dueCalls, 1)
	assert.Equal(t, 2, questions.dueCalls[0].level)
	assert.Equal(t, 10, questions.dueCalls[0].limit)
	assert.Equal(t, int64(12345), questions.dueCalls[0].now)
}

func TestSelectAppliesSessionCaps(t *testing.T) {
	questions := newMockQuestionRepo()
	questions.newQuestions = makeQuestions(1, 2, 3, 4, 5)
	questions.dueQuestions = makeQuestions(6, 7, 8)
	settings := newMockSettingsRepo()
	settings.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 5, NewPerSession: 2, MaxReviewPerSession: 1})

	selector := NewEligibilitySelector(questions, settings)
	category := &entity.Category{ID: 10, LanguageID: 5}

	got, err := selector.Select(context.Background(), 1, category, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSelectZeroCapsSuppressBuckets(t *testing.T) {
	questions := newMockQuestionRepo()
	questions.newQuestions = makeQuestions(1, 2)
	questions.dueQuestions = makeQuestions(3)
	settings := newMockSettingsRepo()
	settings.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 5, NewPerSession: 0, MaxReviewPerSession: 1})

	selector := NewEligibilitySelector(questions, settings)
	category := &entity.Category{ID: 10, LanguageID: 5}

	got, err := selector.Select(context.Background(), 1, category, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestSelectMissingSettingsUsesDefaults(t *testing.T) {
	questions := newMockQuestionRepo()
	questions.newQuestions = makeQuestions(1)
	settings := newMockSettingsRepo()

	selector := NewEligibilitySelector(questions, settings)
	category := &entity.Category{ID: 10, LanguageID: 5}

	_, err := selector.Select(context.Background(), 1, category, 0)
	require.NoError(t, err)

	require.Len(t, questions.newCalls, 1)
	assert.Equal(t, entity.DefaultNewPerSession, questions.newCalls[0].limit)
	assert.Equal(t, entity.LevelUnassigned, questions.newCalls[0].level)
}

func TestSelectEmptyResultIsNoQuestions(t *testing.T) {
	questions := newMockQuestionRepo()
	settings := newMockSettingsRepo()
	settings.put(entity.UserLanguageSettings{UserID: 1, LanguageID: 5, NewPerSession: 10, MaxReviewPerSession: 10})

	selector := NewEligibilitySelector(questions, settings)
	category := &entity.Category{ID: 10, LanguageID: 5}

	_, err := selector.Select(context.Background(), 1, category, 0)
	assert.ErrorIs(t, err, apperrors.ErrNoQuestions)
}

func TestSelectEmptyPlacementCategoryIsNoQuestions(t *testing.T) {
	questions := newMockQuestionRepo()
	settings := newMockSettingsRepo()
	selector := NewEligibilitySelector(questions, settings)

	category := &entity.Category{ID: 10, LanguageID: 5, IsPlacement: true}
	_, err := selector.Select(context.Background(), 1, category, 0)
	assert.ErrorIs(t, err, apperrors.ErrNoQuestions)
}
