package user

import (
	"time"

	domain "fitness-app/internal/domain/user"
)

// AccountResponse представляет учётную запись пользователя.
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountUpdateRequest содержит изменяемые поля аккаунта.
type AccountUpdateRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Username  *string `json:"username,omitempty" binding:"omitempty,alphanum,min=3,max=32"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
}

// UserListResponse представляет административный список пользователей.
type UserListResponse struct {
	Users []AccountResponse `json:"users"`
	Total int               `json:"total"`
}

func toAccountResponse(u *domain.User) AccountResponse {
	return AccountResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
