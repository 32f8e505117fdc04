package entity

// Границы настроек сессии
const (
	MaxNewPerSession     = 50
	MaxReviewPerSession  = 100
	DefaultNewPerSession = 10
	DefaultMaxReview     = 10
	LevelUnassigned      = 0
	MaxLanguageLevel     = 3
)

// UserLanguageSettings хранит настройки пользователя для одного языка:
// лимиты сессии и присвоенный уровень. Уровень 0 означает, что
// вступительный тест ещё не пройден и фильтрация по сложности выключена.
type UserLanguageSettings struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	UserID     uint `json:"user_id" gorm:"not null;uniqueIndex:idx_settings_user_lang"`
	LanguageID uint `json:"language_id" gorm:"not null;uniqueIndex:idx_settings_user_lang"`

	// NewPerSession: сколько новых вопросов брать в одну сессию (0..50)
	NewPerSession int `json:"new_per_session" gorm:"not null;default:10"`

	// MaxReviewPerSession: сколько вопросов к повторению брать в одну сессию (0..100)
	MaxReviewPerSession int `json:"max_review_per_session" gorm:"not null;default:10"`

	// LanguageLevel: 0 = не присвоен, 1..3 = junior..senior
	LanguageLevel int `json:"language_level" gorm:"not null;default:0"`
}

// TableName определяет имя таблицы для UserLanguageSettings
func (UserLanguageSettings) TableName() string {
	return "user_language_settings"
}
