package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fitness-app/internal/domain/profile"
	"fitness-app/internal/domain/training"
	repo "fitness-app/internal/repository/interfaces"
	"fitness-app/pkg/logger"
)

// Service управляет тренировочными планами текущего пользователя.
type Service interface {
	// List возвращает планы пользователя, новые первыми.
	List(ctx context.Context, userID uuid.UUID) ([]*training.Plan, error)

	// Get возвращает repo.ErrNotFound и для чужих планов.
	Get(ctx context.Context, userID, planID uuid.UUID) (*training.Plan, error)

	// Create сохраняет план, присланный пользователем. Документ проверяется
	// тем же валидатором, что и ответ модели.
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*training.Plan, error)

	// Update частично обновляет план и заново проверяет его.
	Update(ctx context.Context, userID, planID uuid.UUID, input UpdateInput) (*training.Plan, error)

	Delete(ctx context.Context, userID, planID uuid.UUID) error

	// Generate строит план по профилю пользователя через модель и сохраняет его.
	// При любой ошибке в хранилище ничего не пишется.
	Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*training.Plan, error)
}

// DocumentGenerator выдаёт проверенные документы плана.
type DocumentGenerator interface {
	Generate(ctx context.Context, p PromptParams) (*training.Document, error)
}

// CreateInput описывает новый план от пользователя. Exercises содержит сырой JSON документа.
type CreateInput struct {
	PlanType   training.PlanType
	Difficulty training.Difficulty
	Exercises  []byte
	IsActive   *bool
}

// UpdateInput: nil-поле означает «не менять».
type UpdateInput struct {
	PlanType   *training.PlanType
	Difficulty *training.Difficulty
	Exercises  []byte
	IsActive   *bool
}

// GenerateInput задаёт необязательные параметры генерации.
type GenerateInput struct {
	// PlanType по умолчанию STRENGTH.
	PlanType *training.PlanType
}

type service struct {
	plans     repo.TrainingPlanRepository
	profiles  repo.ProfileRepository
	generator DocumentGenerator
	log       logger.Logger
}

func NewService(
	plans repo.TrainingPlanRepository,
	profiles repo.ProfileRepository,
	generator DocumentGenerator,
	log logger.Logger,
) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		plans:     plans,
		profiles:  profiles,
		generator: generator,
		log:       log,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*training.Plan, error) {
	return s.plans.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID, planID uuid.UUID) (*training.Plan, error) {
	return s.plans.GetByID(ctx, userID, planID)
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*training.Plan, error) {
	doc, err := parseDocument(input.Exercises)
	if err != nil {
		return nil, err
	}

	p := training.NewPlan(userID, input.PlanType, input.Difficulty, *doc)
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := s.save(ctx, p, s.plans.Create); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, userID, planID uuid.UUID, input UpdateInput) (*training.Plan, error) {
	p, err := s.plans.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if input.PlanType != nil {
		p.PlanType = *input.PlanType
	}
	if input.Difficulty != nil {
		p.Difficulty = *input.Difficulty
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if input.Exercises != nil {
		doc, err := parseDocument(input.Exercises)
		if err != nil {
			return nil, err
		}
		p.Exercises = *doc
	}

	if err := s.save(ctx, p, s.plans.Update); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	return s.plans.Delete(ctx, userID, planID)
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*training.Plan, error) {
	planType := training.PlanTypeStrength
	if input.PlanType != nil {
		planType = *input.PlanType
	}
	// до обращения к модели, чтобы не тратить запрос впустую
	if !planType.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrConstraintViolation, training.ErrInvalidPlanType, planType)
	}

	prof, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	doc, err := s.generator.Generate(ctx, promptParamsFrom(prof))
	if err != nil {
		return nil, err
	}

	p := training.NewPlan(userID, planType, training.Difficulty(prof.ExperienceLevel), *doc)
	if err := s.save(ctx, p, s.plans.Create); err != nil {
		s.log.Warn("generated plan rejected", map[string]any{
			"user_id": userID.String(),
			"kind":    KindOf(err),
			"error":   err,
		})
		return nil, err
	}

	s.log.Info("generated plan saved", map[string]any{
		"user_id":   userID.String(),
		"plan_id":   p.ID.String(),
		"plan_type": string(p.PlanType),
	})
	return p, nil
}

// save проверяет инварианты плана и вызывает write. Нарушения ограничений,
// найденные здесь или хранилищем, возвращаются как ErrConstraintViolation.
func (s *service) save(ctx context.Context, p *training.Plan, write func(context.Context, *training.Plan) error) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	if err := write(ctx, p); err != nil {
		if errors.Is(err, repo.ErrConstraintViolation) {
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
		return err
	}
	return nil
}

func parseDocument(raw []byte) (*training.Document, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, training.ErrMalformedJSON)
	}
	doc, err := training.ParseDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

func promptParamsFrom(p *profile.Profile) PromptParams {
	return PromptParams{
		ExperienceLevel:  p.ExperienceLevel,
		FitnessGoal:      p.FitnessGoal,
		AvailableDays:    p.AvailableDays,
		HealthConditions: p.HealthConditions,
	}
}
