package srs

import (
	"time"

	"github.com/yourusername/codequiz-api/internal/domain/repository"
)

// Оценки качества ответа
const (
	QualityMiss = 0 // неверный ответ или таймаут
	QualityHard = 1 // верный, осталось меньше 10 секунд
	QualityGood = 2 // верный, осталось от 10 секунд
	QualityEasy = 3 // верный, осталось от 20 секунд
)

// Пороги остатка времени для оценки качества
const (
	easyRemaining = 20 * time.Second
	goodRemaining = 10 * time.Second
)

// Типы WebSocket-событий сессии
const (
	EventSessionState    = "session:state"
	EventSessionFeedback = "session:feedback"
	EventSessionResult   = "session:result"
	EventSessionError    = "session:error"
)

// Config содержит настройки проведения квиз-сессий
type Config struct {
	// QuestionSeconds: таймер на один вопрос
	QuestionSeconds int

	// FeedbackDelay: пауза между показом результата ответа и следующим вопросом
	FeedbackDelay time.Duration

	// PlacementTestSize: число вопросов вступительного теста
	PlacementTestSize int

	// PlacementJuniorMax, PlacementMiddleMax: верхние границы числа
	// правильных ответов для уровней 1 и 2; всё выше даёт уровень 3
	PlacementJuniorMax int
	PlacementMiddleMax int

	// LearnedIntervalDays: минимальный интервал, при котором вопрос
	// считается выученным в статистике
	LearnedIntervalDays int

	// LockTTL: время жизни блокировки активной сессии в Redis
	LockTTL time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		QuestionSeconds:     30,
		FeedbackDelay:       time.Second,
		PlacementTestSize:   15,
		PlacementJuniorMax:  6,
		PlacementMiddleMax:  12,
		LearnedIntervalDays: 21,
		LockTTL:             30 * time.Minute,
	}
}

// EventSender отправляет события сессии подключенному клиенту
type EventSender interface {
	SendEventToUser(userID uint, eventType string, data interface{}) error
}

// Dependencies содержит зависимости компонентов SRS
type Dependencies struct {
	QuestionRepo repository.QuestionRepo
	ScheduleRepo repository.ScheduleRepo
	SettingsRepo repository.SettingsRepo
	CatalogRepo  repository.CatalogRepo
	CacheRepo    repository.CacheRepo
	EventSender  EventSender
}

// OptionView — вариант ответа без флага правильности
type OptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// QuestionView — вопрос в том виде, в котором он отдаётся клиенту
type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

// StateSnapshot — снимок состояния сессии для клиента
type StateSnapshot struct {
	SessionID      string        `json:"session_id"`
	CategoryID     uint          `json:"category_id"`
	Placement      bool          `json:"placement"`
	QuestionNumber int           `json:"question_number"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
	SecondsLeft    int           `json:"seconds_left"`
	Correct        int           `json:"correct"`
	Wrong          int           `json:"wrong"`
	IsDelayActive  bool          `json:"is_delay_active"`
	Finished       bool          `json:"finished"`
}

// AnswerFeedback — результат ответа на один вопрос
type AnswerFeedback struct {
	QuestionID       uint   `json:"question_id"`
	SelectedOptionID uint   `json:"selected_option_id,omitempty"`
	CorrectOptionID  uint   `json:"correct_option_id"`
	IsCorrect        bool   `json:"is_correct"`
	TimedOut         bool   `json:"timed_out"`
	Explanation      string `json:"explanation,omitempty"`
	Requeued         bool   `json:"requeued"`
}

// SessionResult — итог завершённой сессии
type SessionResult struct {
	SessionID      string `json:"session_id"`
	Correct        int    `json:"correct"`
	Wrong          int    `json:"wrong"`
	ScorePercent   int    `json:"score_percent"`
	Placement      bool   `json:"placement"`
	PlacementLevel int    `json:"placement_level,omitempty"`
}

// QualityFromRemaining выводит оценку качества верного ответа из
// оставшегося на таймере времени
func QualityFromRemaining(remaining time.Duration) int {
	switch {
	case remaining >= easyRemaining:
		return QualityEasy
	case remaining >= goodRemaining:
		return QualityGood
	default:
		return QualityHard
	}
}
