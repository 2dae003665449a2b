package interfaces

import (
	"context"

	"github.com/google/uuid"

	"fitness-app/internal/domain/training"
)

// TrainingPlanRepository хранит тренировочные планы.
// Все методы чтения и изменения ограничены планами владельца userID:
// чужой план неотличим от несуществующего.
type TrainingPlanRepository interface {
	// Create сохраняет план. Документ упражнений записывается как есть.
	Create(ctx context.Context, plan *training.Plan) error

	GetByID(ctx context.Context, userID, id uuid.UUID) (*training.Plan, error)

	// ListByUser возвращает планы пользователя, новые первыми.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*training.Plan, error)

	// Update перезаписывает plan_type, difficulty, exercises и is_active.
	Update(ctx context.Context, plan *training.Plan) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
