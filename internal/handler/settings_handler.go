package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/handler/dto"
	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/service"
)

// SettingsHandler управляет настройками пользователя по языкам
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler создает новый обработчик настроек
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// List обрабатывает GET /api/settings
func (h *SettingsHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	settings, err := h.settingsService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Get обрабатывает GET /api/settings/:language_id
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	languageID, ok := middleware.ExtractUintParam(c, "language_id")
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), userID, languageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update обрабатывает PUT /api/settings/:language_id
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}
	languageID, ok := middleware.ExtractUintParam(c, "language_id")
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), userID, languageID, req.NewPerSession, req.MaxReviewPerSession)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
