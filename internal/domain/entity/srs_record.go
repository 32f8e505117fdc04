package entity

// Начальные значения SRS-записи при первом знакомстве с вопросом
const (
	InitialEasiness        = 2.5
	MinEasiness            = 1.3
	InitialRepetitionCount = 1
	InitialIntervalDays    = 1
)

// MillisPerDay — один день в миллисекундах, единица хранения LastReviewAt
const MillisPerDay int64 = 24 * 60 * 60 * 1000

// SRSRecord хранит состояние интервального повторения одного вопроса
// для одного пользователя. На пару (вопрос, пользователь) существует
// не более одной записи, это обеспечивает уникальный индекс.
type SRSRecord struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	QuestionID uint `json:"question_id" gorm:"not null;uniqueIndex:idx_srs_question_user"`
	UserID     uint `json:"user_id" gorm:"not null;uniqueIndex:idx_srs_question_user"`

	// Easiness: коэффициент лёгкости, не опускается ниже MinEasiness
	Easiness float64 `json:"easiness" gorm:"not null;default:2.5"`

	// RepetitionCount: число успешных повторений подряд (минимум 1)
	RepetitionCount int `json:"repetition_count" gorm:"not null;default:1"`

	// IntervalDays: дней до следующего повторения (минимум 1)
	IntervalDays int `json:"interval_days" gorm:"not null;default:1"`

	// LastReviewAt: момент последнего повторения, epoch-миллисекунды.
	// NULL допустим для записей, импортированных без истории.
	LastReviewAt *int64 `json:"last_review_at" gorm:"index"`
}

// TableName определяет имя таблицы для SRSRecord
func (SRSRecord) TableName() string {
	return "srs_records"
}

// DueAt возвращает момент (epoch-мс), начиная с которого вопрос
// снова подлежит повторению. Для записи без истории вопрос считается
// просроченным немедленно.
func (r *SRSRecord) DueAt() int64 {
	if r.LastReviewAt == nil {
		return 0
	}
	return *r.LastReviewAt + int64(r.IntervalDays)*MillisPerDay
}

// IsDue сообщает, наступил ли срок повторения к моменту now (epoch-мс)
func (r *SRSRecord) IsDue(now int64) bool {
	return r.DueAt() <= now
}
