package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "fitness-app/internal/domain/profile"
	repo "fitness-app/internal/repository/interfaces"
)

// Service управляет фитнес-профилем текущего пользователя.
type Service interface {
	// Get возвращает repo.ErrNotFound, если профиль ещё не заполнялся.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// Upsert применяет переданные поля к существующему профилю или к профилю
	// со значениями по умолчанию и сохраняет результат.
	Upsert(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Profile, error)
}

// UpdateInput: nil-поле означает «не менять».
type UpdateInput struct {
	Gender           *domain.Gender
	Weight           *float64
	Height           *float64
	Age              *int
	ExperienceLevel  *domain.ExperienceLevel
	FitnessGoal      *domain.FitnessGoal
	AvailableDays    *int
	HealthConditions *string
}

type service struct {
	profiles repo.ProfileRepository
}

func NewService(profiles repo.ProfileRepository) Service {
	return &service{profiles: profiles}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *service) Upsert(ctx context.Context, userID uuid.UUID, input UpdateInput) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		p = domain.New(userID)
	case err != nil:
		return nil, err
	}

	input.apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

func (in UpdateInput) apply(p *domain.Profile) {
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.ExperienceLevel != nil {
		p.ExperienceLevel = *in.ExperienceLevel
	}
	if in.FitnessGoal != nil {
		p.FitnessGoal = *in.FitnessGoal
	}
	if in.AvailableDays != nil {
		p.AvailableDays = *in.AvailableDays
	}
	if in.HealthConditions != nil {
		p.HealthConditions = *in.HealthConditions
	}
}
