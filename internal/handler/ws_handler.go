package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/yourusername/codequiz-api/internal/handler/dto"
	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/websocket"
)

// WSHandler устанавливает WebSocket-подключения для потока событий сессии
type WSHandler struct {
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
}

// NewWSHandler создает новый обработчик WebSocket
func NewWSHandler(hub *websocket.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS для рукопожатия контролируется на уровне роутера
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect обрабатывает GET /ws?token=...
func (h *WSHandler) Connect(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка рукопожатия: user=%d err=%v", userID, err)
		return
	}

	client := websocket.NewClient(h.hub, conn, userID)
	client.Start()
}
