package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/handler/dto"
	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/service"
)

// StatsHandler отдаёт статистику изучения
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый обработчик статистики
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Category обрабатывает GET /api/stats/categories/:category_id
func (h *StatsHandler) Category(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	categoryID, ok := middleware.ExtractUintParam(c, "category_id")
	if !ok {
		return
	}

	stats, err := h.statsService.CategoryStats(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Language обрабатывает GET /api/stats/languages/:language_id
func (h *StatsHandler) Language(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	languageID, ok := middleware.ExtractUintParam(c, "language_id")
	if !ok {
		return
	}

	stats, err := h.statsService.LanguageStats(c.Request.Context(), userID, languageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": stats})
}
