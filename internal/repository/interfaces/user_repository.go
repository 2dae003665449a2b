package interfaces

import (
	"context"

	"github.com/google/uuid"

	domain "fitness-app/internal/domain/user"
)

// UserRepository определяет контракт хранилища учётных записей.
// Мягко удалённые пользователи для всех методов чтения считаются отсутствующими.
type UserRepository interface {
	// Create возвращает ErrEmailExists или ErrUsernameExists при конфликте.
	Create(ctx context.Context, user *domain.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List возвращает активных пользователей, новые первыми.
	List(ctx context.Context) ([]*domain.User, error)

	// Update не трогает id, created_at и password_hash.
	Update(ctx context.Context, user *domain.User) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
}
