package interfaces

import (
	"context"

	"github.com/google/uuid"

	"fitness-app/internal/domain/profile"
)

// ProfileRepository хранит фитнес-профили (не более одного на пользователя).
type ProfileRepository interface {
	// GetByUserID возвращает ErrNotFound, если профиль ещё не создан.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)

	// Upsert создаёт профиль или перезаписывает существующий профиль того же пользователя.
	// Нарушение ограничений схемы возвращается как ErrConstraintViolation.
	Upsert(ctx context.Context, p *profile.Profile) error
}
