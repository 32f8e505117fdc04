package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// respondError переводит ошибку сервисного слоя в HTTP-ответ
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNoQuestions):
		// Пустая выборка не ошибка клиента, отдаём 200 с пояснением
		c.JSON(http.StatusOK, gin.H{"no_questions": true, "message": err.Error()})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
