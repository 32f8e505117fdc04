package dto

// RegisterRequest — тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest — тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse — ответ на вход
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// UserResponse — публичное представление пользователя
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StartSessionRequest — тело запроса запуска сессии
type StartSessionRequest struct {
	CategoryID uint `json:"category_id" binding:"required"`
}

// AnswerRequest — тело запроса ответа на вопрос.
// OptionID = 0 означает сдаться без выбора варианта.
type AnswerRequest struct {
	OptionID uint `json:"option_id"`
}

// UpdateSettingsRequest — тело запроса изменения лимитов сессии
type UpdateSettingsRequest struct {
	NewPerSession       int `json:"new_per_session"`
	MaxReviewPerSession int `json:"max_review_per_session"`
}

// ErrorResponse — единый формат ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}
