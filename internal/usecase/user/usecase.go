package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "fitness-app/internal/domain/user"
	repo "fitness-app/internal/repository/interfaces"
)

// Service управляет учётной записью текущего пользователя
// и административный список пользователей.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// UpdateAccount меняет только переданные поля. Пароль и роль здесь не меняются.
	UpdateAccount(ctx context.Context, userID uuid.UUID, input AccountUpdateInput) (*domain.User, error)

	// DeleteAccount мягко удаляет аккаунт.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// ListUsers возвращает всех активных пользователей (для администраторов).
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// AccountUpdateInput: nil-поле означает «не менять».
type AccountUpdateInput struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
}

type service struct {
	users repo.UserRepository
}

func NewService(users repo.UserRepository) Service {
	return &service{users: users}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *service) UpdateAccount(ctx context.Context, userID uuid.UUID, input AccountUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.users.SoftDelete(ctx, userID)
}

func (s *service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
