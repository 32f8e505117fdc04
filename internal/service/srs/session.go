package srs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

const storeTimeout = 5 * time.Second

// Manager управляет активными квиз-сессиями. На пользователя
// допускается одна активная сессия, это обеспечивает блокировка в Redis.
type Manager struct {
	config *Config
	deps   *Dependencies

	scheduler *ReviewScheduler
	selector  *EligibilitySelector
	assignor  *PlacementAssignor

	// clock подменяется в тестах
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[uint]*Session
}

// NewManager создает менеджер сессий
func NewManager(config *Config, deps *Dependencies) *Manager {
	return &Manager{
		config:    config,
		deps:      deps,
		scheduler: NewReviewScheduler(deps.ScheduleRepo),
		selector:  NewEligibilitySelector(deps.QuestionRepo, deps.SettingsRepo),
		assignor:  NewPlacementAssignor(config, deps.SettingsRepo, deps.CacheRepo),
		clock:     time.Now,
		sessions:  make(map[uint]*Session),
	}
}

// Session — состояние одной активной квиз-сессии.
// Все поля защищены мьютексом, колбэки таймеров проходят через него.
type Session struct {
	ID        string
	UserID    uint
	Category  entity.Category
	Placement bool

	manager *Manager

	mu             sync.Mutex
	queue          []entity.Question
	index          int
	totalQuestions int
	repetitions    int
	correct        int
	wrong          int
	isDelayActive  bool
	finished       bool

	askSeq   int
	timer    *time.Timer
	delay    *time.Timer
	deadline time.Time
}

func lockKey(userID uint) string {
	return fmt.Sprintf("session:lock:%d", userID)
}

// StartSession запускает новую сессию по категории.
// Пока у пользователя есть активная сессия, повторный запуск
// возвращает apperrors.ErrConflict.
func (m *Manager) StartSession(ctx context.Context, userID, categoryID uint) (*StateSnapshot, error) {
	acquired, err := m.deps.CacheRepo.SetNX(ctx, lockKey(userID), "1", m.config.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: session already active", apperrors.ErrConflict)
	}

	snapshot, err := m.startLocked(ctx, userID, categoryID)
	if err != nil {
		m.releaseLock(userID)
		return nil, err
	}
	return snapshot, nil
}

func (m *Manager) startLocked(ctx context.Context, userID, categoryID uint) (*StateSnapshot, error) {
	category, err := m.deps.CatalogRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	now := m.clock().UnixMilli()
	questions, err := m.selector.Select(ctx, userID, category, now)
	if err != nil {
		return nil, err
	}

	if category.IsPlacement && len(questions) > m.config.PlacementTestSize {
		questions = questions[:m.config.PlacementTestSize]
	}

	session := &Session{
		ID:             uuid.NewString(),
		UserID:         userID,
		Category:       *category,
		Placement:      category.IsPlacement,
		manager:        m,
		queue:          questions,
		totalQuestions: len(questions),
	}

	m.mu.Lock()
	m.sessions[userID] = session
	m.mu.Unlock()

	log.Printf("[Session] Сессия %s запущена: user=%d category=%d questions=%d placement=%v",
		session.ID, userID, categoryID, len(questions), session.Placement)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.askCurrent()
	return session.snapshot(), nil
}

// GetState возвращает снимок активной сессии пользователя
func (m *Manager) GetState(userID uint) (*StateSnapshot, error) {
	session := m.get(userID)
	if session == nil {
		return nil, apperrors.ErrNotFound
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

// Answer обрабатывает ответ пользователя на текущий вопрос.
// Во время паузы обратной связи ввод игнорируется (ErrConflict).
func (m *Manager) Answer(ctx context.Context, userID, optionID uint) (*AnswerFeedback, *StateSnapshot, error) {
	session := m.get(userID)
	if session == nil {
		return nil, nil, apperrors.ErrNotFound
	}
	return session.answer(optionID)
}

// Cancel прерывает активную сессию без записи результата.
// Блокировка снимается и без сессии в памяти: после перезапуска
// процесса запись в Redis переживает карту сессий, иначе пользователь
// ждал бы истечения TTL.
func (m *Manager) Cancel(ctx context.Context, userID uint) error {
	m.mu.Lock()
	session, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if !ok {
		m.releaseLock(userID)
		return apperrors.ErrNotFound
	}

	session.mu.Lock()
	session.finished = true
	session.stopTimers()
	session.mu.Unlock()

	m.releaseLock(userID)
	log.Printf("[Session] Сессия %s отменена: user=%d", session.ID, userID)
	return nil
}

func (m *Manager) get(userID uint) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[userID]
}

func (m *Manager) releaseLock(userID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.deps.CacheRepo.Delete(ctx, lockKey(userID)); err != nil {
		log.Printf("[Session] Не удалось снять блокировку: user=%d err=%v", userID, err)
	}
}

func (m *Manager) remove(userID uint, session *Session) {
	m.mu.Lock()
	if current, ok := m.sessions[userID]; ok && current == session {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()
	m.releaseLock(userID)
}

// --- внутренняя машина состояний, вызывается под session.mu ---

func (s *Session) current() *entity.Question {
	if s.index >= len(s.queue) {
		return nil
	}
	return &s.queue[s.index]
}

// askCurrent взводит таймер текущего вопроса и рассылает состояние
func (s *Session) askCurrent() {
	s.askSeq++
	seq := s.askSeq
	s.deadline = s.manager.clock().Add(time.Duration(s.manager.config.QuestionSeconds) * time.Second)
	s.timer = time.AfterFunc(time.Duration(s.manager.config.QuestionSeconds)*time.Second, func() {
		s.onTimeout(seq)
	})
	s.pushState()
}

func (s *Session) answer(optionID uint) (*AnswerFeedback, *StateSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return nil, nil, fmt.Errorf("%w: session finished", apperrors.ErrConflict)
	}
	if s.isDelayActive {
		return nil, nil, fmt.Errorf("%w: answer already being processed", apperrors.ErrConflict)
	}

	question := s.current()
	if question == nil {
		return nil, nil, apperrors.ErrNotFound
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.askSeq++ // обесцениваем висящий колбэк таймаута

	remaining := s.deadline.Sub(s.manager.clock())
	if remaining < 0 {
		remaining = 0
	}

	correct := optionID != 0 && optionID == question.CorrectOptionID()
	quality := QualityMiss
	if correct {
		quality = QualityFromRemaining(remaining)
	}

	feedback := s.process(question, optionID, correct, quality, false)
	return feedback, s.snapshot(), nil
}

func (s *Session) onTimeout(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.isDelayActive || seq != s.askSeq {
		return
	}
	question := s.current()
	if question == nil {
		return
	}

	log.Printf("[Session] Таймаут вопроса %d: user=%d", question.ID, s.UserID)
	s.process(question, 0, false, QualityMiss, true)
}

// process фиксирует результат ответа: счётчики, SRS-запись, повтор
// вопроса в хвосте очереди и пауза перед следующим вопросом
func (s *Session) process(question *entity.Question, optionID uint, correct bool, quality int, timedOut bool) *AnswerFeedback {
	if correct {
		s.correct++
	} else {
		s.wrong++
	}

	// Повторы в хвосте очереди есть только у обычной сессии,
	// вступительный тест проходится строго один раз
	requeued := false
	if !correct && !s.Placement {
		s.repetitions++
		if s.questionNumber() <= s.totalQuestions-s.repetitions {
			s.queue = append(s.queue, *question)
			requeued = true
		}
	}

	// SRS обновляется на каждый отвеченный вопрос обычной сессии.
	// Ошибка хранилища не прерывает сессию, клиент получает событие.
	if !s.Placement {
		s.recordReview(question.ID, quality)
	}

	feedback := &AnswerFeedback{
		QuestionID:       question.ID,
		SelectedOptionID: optionID,
		CorrectOptionID:  question.CorrectOptionID(),
		IsCorrect:        correct,
		TimedOut:         timedOut,
		Explanation:      question.Explanation,
		Requeued:         requeued,
	}
	s.pushEvent(EventSessionFeedback, feedback)

	s.isDelayActive = true
	s.pushState()
	s.delay = time.AfterFunc(s.manager.config.FeedbackDelay, s.advance)
	return feedback
}

func (s *Session) recordReview(questionID uint, quality int) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	now := s.manager.clock().UnixMilli()
	if err := s.manager.scheduler.RecordReview(ctx, questionID, s.UserID, quality, now); err != nil {
		log.Printf("[Session] Ошибка записи SRS: question=%d user=%d err=%v", questionID, s.UserID, err)
		s.pushEvent(EventSessionError, map[string]string{
			"message": "failed to save review progress",
		})
	}
}

// advance снимает паузу и переходит к следующему вопросу или к итогам
func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return
	}
	s.isDelayActive = false
	s.index++

	if s.index >= len(s.queue) {
		s.finish()
		return
	}
	s.askCurrent()
}

func (s *Session) finish() {
	s.finished = true
	s.stopTimers()

	result := &SessionResult{
		SessionID:    s.ID,
		Correct:      s.correct,
		Wrong:        s.wrong,
		ScorePercent: scorePercent(s.correct, s.wrong),
		Placement:    s.Placement,
	}

	if s.Placement {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		level, err := s.manager.assignor.Assign(ctx, s.UserID, s.Category.LanguageID, s.correct)
		cancel()
		if err != nil {
			log.Printf("[Session] Ошибка присвоения уровня: user=%d err=%v", s.UserID, err)
			s.pushEvent(EventSessionError, map[string]string{
				"message": "failed to assign language level",
			})
		} else {
			result.PlacementLevel = level
		}
	}

	s.pushState()
	s.pushEvent(EventSessionResult, result)
	log.Printf("[Session] Сессия %s завершена: user=%d correct=%d wrong=%d score=%d%%",
		s.ID, s.UserID, s.correct, s.wrong, result.ScorePercent)

	s.manager.remove(s.UserID, s)
}

func (s *Session) stopTimers() {
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.delay != nil {
		s.delay.Stop()
	}
}

// questionNumber — порядковый номер текущего вопроса, с единицы
func (s *Session) questionNumber() int {
	return s.index + 1
}

func (s *Session) snapshot() *StateSnapshot {
	snap := &StateSnapshot{
		SessionID:      s.ID,
		CategoryID:     s.Category.ID,
		Placement:      s.Placement,
		QuestionNumber: s.questionNumber(),
		TotalQuestions: s.totalQuestions,
		Correct:        s.correct,
		Wrong:          s.wrong,
		IsDelayActive:  s.isDelayActive,
		Finished:       s.finished,
	}

	if !s.finished {
		if question := s.current(); question != nil {
			snap.Question = questionView(question)
		}
		if !s.isDelayActive {
			left := s.deadline.Sub(s.manager.clock())
			if left > 0 {
				snap.SecondsLeft = int(left.Seconds())
			}
		}
	}
	return snap
}

func (s *Session) pushState() {
	s.pushEvent(EventSessionState, s.snapshot())
}

func (s *Session) pushEvent(eventType string, data interface{}) {
	if s.manager.deps.EventSender == nil {
		return
	}
	if err := s.manager.deps.EventSender.SendEventToUser(s.UserID, eventType, data); err != nil {
		log.Printf("[Session] Ошибка отправки события %s: user=%d err=%v", eventType, s.UserID, err)
	}
}

func questionView(q *entity.Question) *QuestionView {
	view := &QuestionView{
		ID:      q.ID,
		Text:    q.Text,
		Options: make([]OptionView, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		view.Options = append(view.Options, OptionView{ID: o.ID, Text: o.Text})
	}
	return view
}

func scorePercent(correct, wrong int) int {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}
