package entity

// Уровни сложности вопроса. Соответствуют уровням пользователя 1..3.
const (
	DifficultyJunior = 1
	DifficultyMiddle = 2
	DifficultySenior = 3
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	CategoryID uint   `json:"category_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"type:text;not null"`

	// Difficulty: сложность вопроса от 1 (junior) до 3 (senior)
	Difficulty int `json:"difficulty" gorm:"not null;default:1;check:difficulty BETWEEN 1 AND 3"`

	// Explanation: пояснение, показываемое после ответа (может быть пустым)
	Explanation string `json:"explanation,omitempty" gorm:"type:text"`

	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

// TableName определяет имя таблицы для Question
func (Question) TableName() string {
	return "questions"
}

// CorrectOptionID возвращает ID правильного варианта ответа.
// Ноль означает, что варианты не загружены или правильный не размечен.
func (q *Question) CorrectOptionID() uint {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o.ID
		}
	}
	return 0
}

// Option представляет один из вариантов ответа на вопрос
type Option struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"type:text;not null"`
	IsCorrect  bool   `json:"-" gorm:"not null;default:false"`
}

// TableName определяет имя таблицы для Option
func (Option) TableName() string {
	return "options"
}
