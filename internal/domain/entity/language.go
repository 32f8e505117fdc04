package entity

// Language представляет язык программирования в каталоге
type Language struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`

	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:LanguageID"`
}

// TableName определяет имя таблицы для Language
func (Language) TableName() string {
	return "languages"
}
