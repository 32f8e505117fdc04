package service

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

type mockUserRepo struct {
	users     map[uint]*entity.User
	byEmail   map[string]*entity.User
	createErr error
	created   []*entity.User
	nextID    uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:   make(map[uint]*entity.User),
		byEmail: make(map[string]*entity.User),
		nextID:  1,
	}
}

func (m *mockUserRepo) put(user entity.User) {
	m.users[user.ID] = &user
	m.byEmail[user.Email] = &user
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	m.nextID++
	m.created = append(m.created, user)
	m.put(*user)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type mockCatalogRepo struct {
	languages  []entity.Language
	categories map[uint][]repository.CategoryCount
	byID       map[uint]*entity.Category
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		categories: make(map[uint][]repository.CategoryCount),
		byID:       make(map[uint]*entity.Category),
	}
}

func (m *mockCatalogRepo) addCategory(cat entity.Category, count int64) {
	m.byID[cat.ID] = &cat
	m.categories[cat.LanguageID] = append(m.categories[cat.LanguageID], repository.CategoryCount{
		Category:      cat,
		QuestionCount: count,
	})
}

func (m *mockCatalogRepo) Languages(ctx context.Context) ([]entity.Language, error) {
	return m.languages, nil
}

func (m *mockCatalogRepo) GetLanguage(ctx context.Context, id uint) (*entity.Language, error) {
	for i := range m.languages {
		if m.languages[i].ID == id {
			return &m.languages[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCatalogRepo) CategoriesByLanguage(ctx context.Context, languageID uint) ([]repository.CategoryCount, error) {
	return m.categories[languageID], nil
}

func (m *mockCatalogRepo) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	cat, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return cat, nil
}

func (m *mockCatalogRepo) PlacementCategory(ctx context.Context, languageID uint) (*entity.Category, error) {
	for _, cc := range m.categories[languageID] {
		if cc.Category.IsPlacement {
			cat := cc.Category
			return &cat, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCatalogRepo) CreateLanguage(ctx context.Context, lang *entity.Language) error {
	lang.ID = uint(len(m.languages) + 1)
	m.languages = append(m.languages, *lang)
	return nil
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, cat *entity.Category) error {
	cat.ID = uint(len(m.byID) + 1)
	m.addCategory(*cat, 0)
	return nil
}

type mockSettingsRepo struct {
	settings  map[[2]uint]*entity.UserLanguageSettings
	updateErr error
	updated   []entity.UserLanguageSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{settings: make(map[[2]uint]*entity.UserLanguageSettings)}
}

func (m *mockSettingsRepo) put(s entity.UserLanguageSettings) {
	m.settings[[2]uint{s.UserID, s.LanguageID}] = &s
}

func (m *mockSettingsRepo) Get(ctx context.Context, userID, languageID uint) (*entity.UserLanguageSettings, error) {
	s, ok := m.settings[[2]uint{userID, languageID}]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *mockSettingsRepo) ListByUser(ctx context.Context, userID uint) ([]entity.UserLanguageSettings, error) {
	var out []entity.UserLanguageSettings
	for _, s := range m.settings {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings *entity.UserLanguageSettings) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, *settings)
	m.put(*settings)
	return nil
}

func (m *mockSettingsRepo) SetLevel(ctx context.Context, userID, languageID uint, level int) error {
	if s, ok := m.settings[[2]uint{userID, languageID}]; ok {
		s.LanguageLevel = level
		return nil
	}
	return apperrors.ErrNotFound
}

type mockQuestionRepo struct {
	totalByCategory map[uint]int64
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockQuestionRepo) ByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	return nil, nil
}

func (m *mockQuestionRepo) NewForUser(ctx context.Context, userID, categoryID uint, level, limit int) ([]entity.Question, error) {
	return nil, nil
}

func (m *mockQuestionRepo) DueForUser(ctx context.Context, userID, categoryID uint, level int, now int64, limit int) ([]entity.Question, error) {
	return nil, nil
}

func (m *mockQuestionRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return m.totalByCategory[categoryID], nil
}

func (m *mockQuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	return nil
}

type mockScheduleRepo struct {
	tracked map[uint]int64
	learned map[uint]int64
}

func (m *mockScheduleRepo) Get(ctx context.Context, questionID, userID uint) (*entity.SRSRecord, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockScheduleRepo) Insert(ctx context.Context, rec *entity.SRSRecord) error { return nil }

func (m *mockScheduleRepo) Update(ctx context.Context, rec *entity.SRSRecord) error { return nil }

func (m *mockScheduleRepo) CountTracked(ctx context.Context, userID, categoryID uint) (int64, error) {
	return m.tracked[categoryID], nil
}

func (m *mockScheduleRepo) CountWithMinInterval(ctx context.Context, userID, categoryID uint, minIntervalDays int) (int64, error) {
	return m.learned[categoryID], nil
}

// компиляционная проверка соответствия интерфейсам
var (
	_ repository.UserRepo     = (*mockUserRepo)(nil)
	_ repository.CatalogRepo  = (*mockCatalogRepo)(nil)
	_ repository.SettingsRepo = (*mockSettingsRepo)(nil)
	_ repository.QuestionRepo = (*mockQuestionRepo)(nil)
	_ repository.ScheduleRepo = (*mockScheduleRepo)(nil)
)
