package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
	"github.com/yourusername/codequiz-api/pkg/auth"
)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService("test-secret", 1)
}

func TestRegisterCreatesSettingsForAllLanguages(t *testing.T) {
	users := newMockUserRepo()
	catalog := newMockCatalogRepo()
	catalog.languages = []entity.Language{{ID: 1, Name: "Go"}, {ID: 2, Name: "Python"}, {ID: 3, Name: "Java"}}

	svc := NewAuthService(users, catalog, newTestJWT())
	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	require.Len(t, user.LanguageSettings, 3)
	for i, s := range user.LanguageSettings {
		assert.Equal(t, catalog.languages[i].ID, s.LanguageID)
		assert.Equal(t, entity.DefaultNewPerSession, s.NewPerSession)
		assert.Equal(t, entity.DefaultMaxReview, s.MaxReviewPerSession)
		assert.Equal(t, entity.LevelUnassigned, s.LanguageLevel)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), newMockCatalogRepo(), newTestJWT())

	_, err := svc.Register(context.Background(), "", "a@b.c", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Register(context.Background(), "alice", "a@b.c", "short")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLoginSuccess(t *testing.T) {
	users := newMockUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	users.put(entity.User{ID: 7, Username: "alice", Email: "alice@example.com", Password: string(hash)})

	svc := NewAuthService(users, newMockCatalogRepo(), newTestJWT())
	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMockUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	users.put(entity.User{ID: 7, Email: "alice@example.com", Password: string(hash)})

	svc := NewAuthService(users, newMockCatalogRepo(), newTestJWT())
	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), newMockCatalogRepo(), newTestJWT())
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
