package websocket

import (
	"context"
	"log"
	"sync"
)

// Hub управляет активными WebSocket-подключениями.
// На пользователя допускается одно подключение, новое вытесняет старое.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*Client

	register   chan *Client
	unregister chan *Client
}

// NewHub создает новый хаб
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run обрабатывает регистрацию и отключение клиентов до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.UserID]; ok {
				close(old.send)
			}
			h.clients[client.UserID] = client
			h.mu.Unlock()
			log.Printf("[Hub] Клиент подключен: user=%d", client.UserID)

		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.UserID]; ok && current == client {
				delete(h.clients, client.UserID)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("[Hub] Клиент отключен: user=%d", client.UserID)

		case <-ctx.Done():
			h.mu.Lock()
			for _, client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[uint]*Client)
			h.mu.Unlock()
			log.Println("[Hub] Остановлен")
			return
		}
	}
}

// SendToUser отправляет сообщение подключенному пользователю.
// Возвращает false, если пользователь не подключен или его буфер переполнен.
func (h *Hub) SendToUser(userID uint, message []byte) bool {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case client.send <- message:
		return true
	default:
		log.Printf("[Hub] Буфер клиента переполнен, сообщение отброшено: user=%d", userID)
		return false
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
