package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitness-app/internal/domain/training"
	repo "fitness-app/internal/repository/interfaces"
)

// pgTrainingPlan — ORM-модель таблицы training_plans. Документ упражнений лежит в jsonb.
type pgTrainingPlan struct {
	ID         string         `gorm:"column:id;type:uuid;primaryKey"`
	UserID     string         `gorm:"column:user_id;type:uuid;not null;index"`
	PlanType   string         `gorm:"column:plan_type;type:varchar(10);not null"`
	Difficulty string         `gorm:"column:difficulty;type:varchar(3);not null"`
	Exercises  datatypes.JSON `gorm:"column:exercises;type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamptz;not null"`
	IsActive   bool           `gorm:"column:is_active;not null"`
}

func (pgTrainingPlan) TableName() string {
	return "training_plans"
}

// TrainingPlanRepository реализует repo.TrainingPlanRepository на GORM.
type TrainingPlanRepository struct {
	db *gorm.DB
}

var _ repo.TrainingPlanRepository = (*TrainingPlanRepository)(nil)

func NewTrainingPlanRepository(db *gorm.DB) *TrainingPlanRepository {
	return &TrainingPlanRepository{db: db}
}

func (m *pgTrainingPlan) toDomain() (*training.Plan, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	var doc training.Document
	if err := json.Unmarshal(m.Exercises, &doc); err != nil {
		return nil, fmt.Errorf("decode exercises of plan %s: %w", m.ID, err)
	}
	if doc.Days == nil {
		doc.Days = []training.Day{}
	}

	return &training.Plan{
		ID:         id,
		UserID:     userID,
		PlanType:   training.PlanType(m.PlanType),
		Difficulty: training.Difficulty(m.Difficulty),
		Exercises:  doc,
		CreatedAt:  m.CreatedAt,
		IsActive:   m.IsActive,
	}, nil
}

func planFromDomain(p *training.Plan) (*pgTrainingPlan, error) {
	doc := p.Exercises
	if doc.Days == nil {
		doc.Days = []training.Day{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode exercises: %w", err)
	}
	return &pgTrainingPlan{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		PlanType:   string(p.PlanType),
		Difficulty: string(p.Difficulty),
		Exercises:  datatypes.JSON(raw),
		CreatedAt:  p.CreatedAt,
		IsActive:   p.IsActive,
	}, nil
}

// writeModel проверяет инварианты плана до обращения к базе.
func writeModel(p *training.Plan) (*pgTrainingPlan, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Join(repo.ErrConstraintViolation, err)
	}
	return planFromDomain(p)
}

func mapPlanWriteError(err error) error {
	if isConstraintViolation(err) {
		return errors.Join(repo.ErrConstraintViolation, err)
	}
	return err
}

func (r *TrainingPlanRepository) Create(ctx context.Context, plan *training.Plan) error {
	model, err := writeModel(plan)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return mapPlanWriteError(err)
	}
	return nil
}

func (r *TrainingPlanRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*training.Plan, error) {
	var model pgTrainingPlan
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain()
}

func (r *TrainingPlanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*training.Plan, error) {
	var models []pgTrainingPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]*training.Plan, 0, len(models))
	for i := range models {
		p, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Update не меняет владельца и created_at.
func (r *TrainingPlanRepository) Update(ctx context.Context, plan *training.Plan) error {
	model, err := writeModel(plan)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&pgTrainingPlan{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]any{
			"plan_type":  model.PlanType,
			"difficulty": model.Difficulty,
			"exercises":  model.Exercises,
			"is_active":  model.IsActive,
		})
	if result.Error != nil {
		return mapPlanWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *TrainingPlanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		Delete(&pgTrainingPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
