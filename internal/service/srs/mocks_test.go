package srs

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// --- моки репозиториев ---

type mockScheduleRepo struct {
	mu      sync.Mutex
	records map[[2]uint]*entity.SRSRecord

	getErr    error
	insertErr error
	updateErr error

	inserts []entity.SRSRecord
	updates []entity.SRSRecord
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{records: make(map[[2]uint]*entity.SRSRecord)}
}

func (m *mockScheduleRepo) put(rec entity.SRSRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[[2]uint{rec.QuestionID, rec.UserID}] = &rec
}

func (m *mockScheduleRepo) Get(ctx context.Context, questionID, userID uint) (*entity.SRSRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.records[[2]uint{questionID, userID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (m *mockScheduleRepo) Insert(ctx context.Context, rec *entity.SRSRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	key := [2]uint{rec.QuestionID, rec.UserID}
	if _, ok := m.records[key]; ok {
		return apperrors.ErrConflict
	}
	clone := *rec
	m.records[key] = &clone
	m.inserts = append(m.inserts, clone)
	return nil
}

func (m *mockScheduleRepo) Update(ctx context.Context, rec *entity.SRSRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	key := [2]uint{rec.QuestionID, rec.UserID}
	if _, ok := m.records[key]; !ok {
		return apperrors.ErrNotFound
	}
	clone := *rec
	m.records[key] = &clone
	m.updates = append(m.updates, clone)
	return nil
}

func (m *mockScheduleRepo) CountTracked(ctx context.Context, userID, categoryID uint) (int64, error) {
	return 0, nil
}

func (m *mockScheduleRepo) CountWithMinInterval(ctx context.Context, userID, categoryID uint, minIntervalDays int) (int64, error) {
	return 0, nil
}

type mockQuestionRepo struct {
	byCategory   []entity.Question
	newQuestions []entity.Question
	dueQuestions []entity.Question

	byCategoryErr error

	newCalls []selectorCall
	dueCalls []selectorCall
}

func newMockQuestionRepo() *mockQuestionRepo {
	return &mockQuestionRepo{}
}

type selectorCall struct {
	userID     uint
	categoryID uint
	level      int
	limit      int
	now        int64
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockQuestionRepo) ByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	if m.byCategoryErr != nil {
		return nil, m.byCategoryErr
	}
	return m.byCategory, nil
}

func (m *mockQuestionRepo) NewForUser(ctx context.Context, userID, categoryID uint, level, limit int) ([]entity.Question, error) {
	m.newCalls = append(m.newCalls, selectorCall{userID: userID, categoryID: categoryID, level: level, limit: limit})
	if limit <= 0 {
		return nil, nil
	}
	if len(m.newQuestions) > limit {
		return m.newQuestions[:limit], nil
	}
	return m.newQuestions, nil
}

func (m *mockQuestionRepo) DueForUser(ctx context.Context, userID, categoryID uint, level int, now int64, limit int) ([]entity.Question, error) {
	m.dueCalls = append(m.dueCalls, selectorCall{userID: userID, categoryID: categoryID, level: level, limit: limit, now: now})
	if limit <= 0 {
		return nil, nil
	}
	if len(m.dueQuestions) > limit {
		return m.dueQuestions[:limit], nil
	}
	return m.dueQuestions, nil
}

func (m *mockQuestionRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return int64(len(m.byCategory)), nil
}

func (m *mockQuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	return nil
}

type mockSettingsRepo struct {
	mu       sync.Mutex
	settings map[[2]uint]*entity.UserLanguageSettings
	levels   map[[2]uint]int

	setLevelErr error
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{
		settings: make(map[[2]uint]*entity.UserLanguageSettings),
		levels:   make(map[[2]uint]int),
	}
}

func (m *mockSettingsRepo) put(s entity.UserLanguageSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[[2]uint{s.UserID, s.LanguageID}] = &s
}

func (m *mockSettingsRepo) Get(ctx context.Context, userID, languageID uint) (*entity.UserLanguageSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[[2]uint{userID, languageID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *mockSettingsRepo) ListByUser(ctx context.Context, userID uint) ([]entity.UserLanguageSettings, error) {
	return nil, nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings *entity.UserLanguageSettings) error {
	m.put(*settings)
	return nil
}

func (m *mockSettingsRepo) SetLevel(ctx context.Context, userID, languageID uint, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setLevelErr != nil {
		return m.setLevelErr
	}
	m.levels[[2]uint{userID, languageID}] = level
	if s, ok := m.settings[[2]uint{userID, languageID}]; ok {
		s.LanguageLevel = level
	}
	return nil
}

func (m *mockSettingsRepo) level(userID, languageID uint) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.levels[[2]uint{userID, languageID}]
	return l, ok
}

type mockCatalogRepo struct {
	categories map[uint]*entity.Category
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{categories: make(map[uint]*entity.Category)}
}

func (m *mockCatalogRepo) Languages(ctx context.Context) ([]entity.Language, error) {
	return nil, nil
}

func (m *mockCatalogRepo) GetLanguage(ctx context.Context, id uint) (*entity.Language, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockCatalogRepo) CategoriesByLanguage(ctx context.Context, languageID uint) ([]repository.CategoryCount, error) {
	return nil, nil
}

func (m *mockCatalogRepo) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	cat, ok := m.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *cat
	return &clone, nil
}

func (m *mockCatalogRepo) PlacementCategory(ctx context.Context, languageID uint) (*entity.Category, error) {
	for _, cat := range m.categories {
		if cat.LanguageID == languageID && cat.IsPlacement {
			clone := *cat
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCatalogRepo) CreateLanguage(ctx context.Context, lang *entity.Language) error {
	return nil
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, cat *entity.Category) error {
	return nil
}

type mockCacheRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{values: make(map[string]string)}
}

func (m *mockCacheRepo) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (m *mockCacheRepo) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *mockCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok, nil
}

func (m *mockCacheRepo) SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = value
	return true, nil
}

func (m *mockCacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (m *mockCacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return apperrors.ErrNotFound
}

func (m *mockCacheRepo) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

type sentEvent struct {
	userID    uint
	eventType string
	data      interface{}
}

type mockEventSender struct {
	mu     sync.Mutex
	events []sentEvent
}

func (m *mockEventSender) SendEventToUser(userID uint, eventType string, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, sentEvent{userID: userID, eventType: eventType, data: data})
	return nil
}

func (m *mockEventSender) byType(eventType string) []sentEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentEvent
	for _, e := range m.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}
