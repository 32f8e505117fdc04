package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
	"github.com/yourusername/codequiz-api/pkg/auth"
)

// AuthService обрабатывает регистрацию и вход пользователей
type AuthService struct {
	userRepo    repository.UserRepo
	catalogRepo repository.CatalogRepo
	jwtService  *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepo, catalogRepo repository.CatalogRepo, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		jwtService:  jwtService,
	}
}

// Register создает пользователя вместе с настройками по каждому языку
// каталога. Настройки вставляются ассоциацией в той же транзакции,
// что и пользователь: либо появляется всё, либо ничего.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if username == "" || email == "" || len(password) < 6 {
		return nil, fmt.Errorf("%w: username, email and password (6+ chars) are required", apperrors.ErrValidation)
	}

	languages, err := s.catalogRepo.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: password, // хешируется хуком BeforeSave
	}
	for _, lang := range languages {
		user.LanguageSettings = append(user.LanguageSettings, entity.UserLanguageSettings{
			LanguageID:          lang.ID,
			NewPerSession:       entity.DefaultNewPerSession,
			MaxReviewPerSession: entity.DefaultMaxReview,
			LanguageLevel:       entity.LevelUnassigned,
		})
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("[AuthService] Зарегистрирован пользователь %s (id=%d), настроек: %d", username, user.ID, len(languages))
	return user, nil
}

// Login проверяет учётные данные и возвращает пользователя с токеном
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Не раскрываем, существует ли email
		return nil, "", apperrors.ErrUnauthorized
	}

	if !user.CheckPassword(password) {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Profile возвращает пользователя по ID
func (s *AuthService) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
