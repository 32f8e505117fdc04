package websocket

import (
	"encoding/json"
	"fmt"
)

// Event — типизированное сообщение, отправляемое клиенту
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Manager инкапсулирует сериализацию событий поверх хаба
type Manager struct {
	hub *Hub
}

// NewManager создает менеджер поверх хаба
func NewManager(hub *Hub) *Manager {
	return &Manager{hub: hub}
}

// SendEventToUser сериализует событие и отправляет его пользователю.
// Отсутствие подключения не является ошибкой: клиент получит то же
// состояние в HTTP-ответе.
func (m *Manager) SendEventToUser(userID uint, eventType string, data interface{}) error {
	event := Event{Type: eventType, Data: data}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}
	m.hub.SendToUser(userID, payload)
	return nil
}
