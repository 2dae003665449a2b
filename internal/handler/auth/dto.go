package auth

// RegisterRequest представляет тело запроса регистрации.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"athlete@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"Password123!"`
	Username string `json:"username" binding:"required,min=3,max=32" example:"athlete"`
}

// LoginRequest представляет тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest представляет тело запроса обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPair — пара access/refresh токенов.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse возвращается при регистрации, входе и обновлении токенов.
type LoginResponse struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Tokens   TokenPair `json:"tokens"`
}
