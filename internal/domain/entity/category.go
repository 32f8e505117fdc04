package entity

// Category представляет тематическую категорию внутри языка.
// Категория с IsPlacement=true используется для вступительного теста:
// её вопросы не фильтруются SRS-планировщиком и по уровню пользователя.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	LanguageID  uint   `json:"language_id" gorm:"not null;index;uniqueIndex:idx_categories_lang_name"`
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex:idx_categories_lang_name"`
	IsPlacement bool   `json:"is_placement" gorm:"not null;default:false"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName определяет имя таблицы для Category
func (Category) TableName() string {
	return "categories"
}
