package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/handler/dto"
	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/service/srs"
)

// SessionHandler управляет квиз-сессиями пользователя
type SessionHandler struct {
	sessions *srs.Manager
}

// NewSessionHandler создает новый обработчик сессий
func NewSessionHandler(sessions *srs.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start обрабатывает POST /api/sessions
func (h *SessionHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	snapshot, err := h.sessions.StartSession(c.Request.Context(), userID, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// State обрабатывает GET /api/sessions/current
func (h *SessionHandler) State(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	snapshot, err := h.sessions.GetState(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Answer обрабатывает POST /api/sessions/current/answer
func (h *SessionHandler) Answer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	feedback, snapshot, err := h.sessions.Answer(c.Request.Context(), userID, req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback, "state": snapshot})
}

// Cancel обрабатывает DELETE /api/sessions/current
func (h *SessionHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.sessions.Cancel(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
