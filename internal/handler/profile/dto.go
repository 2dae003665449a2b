package profile

import (
	"time"

	domain "fitness-app/internal/domain/profile"
)

// ProfileRequest содержит изменяемые поля фитнес-профиля.
// При первом сохранении weight, experience_level и fitness_goal обязательны.
type ProfileRequest struct {
	Gender           *string  `json:"gender,omitempty" binding:"omitempty,oneof=M F"`
	Weight           *float64 `json:"weight,omitempty" binding:"omitempty,gt=0,lt=1000"`
	Height           *float64 `json:"height,omitempty" binding:"omitempty,gt=0,lt=1000"`
	Age              *int     `json:"age,omitempty" binding:"omitempty,gt=0,lte=120"`
	ExperienceLevel  *string  `json:"experience_level,omitempty" binding:"omitempty,oneof=BEG INT ADV"`
	FitnessGoal      *string  `json:"fitness_goal,omitempty" binding:"omitempty,oneof=HYPERTROPHY STRENGTH ENDURANCE WEIGHT_LOSS MAINTENANCE"`
	AvailableDays    *int     `json:"available_days,omitempty" binding:"omitempty,min=1,max=7"`
	HealthConditions *string  `json:"health_conditions,omitempty" binding:"omitempty,max=2000"`
}

// ProfileResponse представляет фитнес-профиль пользователя.
type ProfileResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Gender           string    `json:"gender"`
	Weight           float64   `json:"weight"`
	Height           float64   `json:"height"`
	Age              int       `json:"age"`
	ExperienceLevel  string    `json:"experience_level"`
	FitnessGoal      string    `json:"fitness_goal"`
	AvailableDays    int       `json:"available_days"`
	HealthConditions string    `json:"health_conditions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:               p.ID.String(),
		UserID:           p.UserID.String(),
		Gender:           string(p.Gender),
		Weight:           p.Weight,
		Height:           p.Height,
		Age:              p.Age,
		ExperienceLevel:  string(p.ExperienceLevel),
		FitnessGoal:      string(p.FitnessGoal),
		AvailableDays:    p.AvailableDays,
		HealthConditions: p.HealthConditions,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
