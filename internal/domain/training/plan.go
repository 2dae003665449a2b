package training

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlanType — тип тренировочного плана.
type PlanType string

const (
	PlanTypeStrength PlanType = "STRENGTH"
	PlanTypeCardio   PlanType = "CARDIO"
	PlanTypeHIIT     PlanType = "HIIT"
	PlanTypeMixed    PlanType = "MIXED"
)

// Difficulty — уровень сложности плана.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEG"
	DifficultyIntermediate Difficulty = "INT"
	DifficultyAdvanced     Difficulty = "ADV"
)

// Ошибки инвариантов плана. Проверяются перед каждым сохранением.
var (
	ErrInvalidPlanType   = errors.New("invalid plan type")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Plan представляет тренировочный план пользователя.
type Plan struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PlanType   PlanType
	Difficulty Difficulty
	Exercises  Document  // хранится как есть, без дополнительной нормализации
	CreatedAt  time.Time // выставляется один раз при создании
	IsActive   bool
}

// NewPlan создаёт активный план для пользователя.
func NewPlan(userID uuid.UUID, planType PlanType, difficulty Difficulty, doc Document) *Plan {
	return &Plan{
		ID:         uuid.New(),
		UserID:     userID,
		PlanType:   planType,
		Difficulty: difficulty,
		Exercises:  doc,
		CreatedAt:  time.Now().UTC(),
		IsActive:   true,
	}
}

// Validate проверяет перечислимые поля плана.
func (p *Plan) Validate() error {
	if !p.PlanType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlanType, p.PlanType)
	}
	if !p.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, p.Difficulty)
	}
	return nil
}

// IsConstraintError сообщает, что err — нарушение инварианта плана.
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrInvalidPlanType) || errors.Is(err, ErrInvalidDifficulty)
}

func (t PlanType) Valid() bool {
	switch t {
	case PlanTypeStrength, PlanTypeCardio, PlanTypeHIIT, PlanTypeMixed:
		return true
	}
	return false
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
