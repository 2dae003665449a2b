package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gender — пол пользователя.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// ExperienceLevel — уровень подготовки. Те же значения используются
// как сложность тренировочного плана.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "BEG"
	LevelIntermediate ExperienceLevel = "INT"
	LevelAdvanced     ExperienceLevel = "ADV"
)

// FitnessGoal — цель тренировок.
type FitnessGoal string

const (
	GoalHypertrophy FitnessGoal = "HYPERTROPHY"
	GoalStrength    FitnessGoal = "STRENGTH"
	GoalEndurance   FitnessGoal = "ENDURANCE"
	GoalWeightLoss  FitnessGoal = "WEIGHT_LOSS"
	GoalMaintenance FitnessGoal = "MAINTENANCE"
)

const (
	DefaultAvailableDays = 3
	MinAvailableDays     = 1
	MaxAvailableDays     = 7
)

// Ошибки валидации профиля.
var (
	ErrInvalidWeight          = errors.New("weight must be greater than 0")
	ErrInvalidGender          = errors.New("invalid gender")
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
	ErrInvalidFitnessGoal     = errors.New("invalid fitness goal")
	ErrInvalidAvailableDays   = errors.New("invalid available days")
)

// Profile — фитнес-профиль пользователя (один на пользователя).
type Profile struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Gender           Gender
	Weight           float64 // кг, > 0
	Height           float64 // см
	Age              int
	ExperienceLevel  ExperienceLevel
	FitnessGoal      FitnessGoal
	AvailableDays    int    // тренировочных дней в неделю
	HealthConditions string // свободный текст, может быть пустым

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New создаёт профиль со значениями по умолчанию для указанного пользователя.
func New(userID uuid.UUID) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:            uuid.New(),
		UserID:        userID,
		Gender:        GenderMale,
		AvailableDays: DefaultAvailableDays,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate проверяет инварианты профиля перед сохранением.
func (p *Profile) Validate() error {
	if p.Weight <= 0 {
		return ErrInvalidWeight
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, p.Gender)
	}
	if !p.ExperienceLevel.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidExperienceLevel, p.ExperienceLevel)
	}
	if !p.FitnessGoal.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFitnessGoal, p.FitnessGoal)
	}
	if p.AvailableDays < MinAvailableDays || p.AvailableDays > MaxAvailableDays {
		return fmt.Errorf("%w: %d", ErrInvalidAvailableDays, p.AvailableDays)
	}
	return nil
}

// IsValidationError сообщает, что err — нарушение инварианта профиля.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidGender) ||
		errors.Is(err, ErrInvalidExperienceLevel) ||
		errors.Is(err, ErrInvalidFitnessGoal) ||
		errors.Is(err, ErrInvalidAvailableDays)
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func (g FitnessGoal) Valid() bool {
	switch g {
	case GoalHypertrophy, GoalStrength, GoalEndurance, GoalWeightLoss, GoalMaintenance:
		return true
	}
	return false
}
