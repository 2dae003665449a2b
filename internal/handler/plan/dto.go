package plan

import (
	"encoding/json"
	"time"

	"fitness-app/internal/domain/training"
)

// CreatePlanRequest содержит план, составленный пользователем вручную.
type CreatePlanRequest struct {
	PlanType   string          `json:"plan_type" binding:"required"`
	Difficulty string          `json:"difficulty" binding:"required"`
	Exercises  json.RawMessage `json:"exercises" binding:"required" swaggertype:"object"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

// UpdatePlanRequest содержит изменяемые поля плана.
type UpdatePlanRequest struct {
	PlanType   *string         `json:"plan_type,omitempty"`
	Difficulty *string         `json:"difficulty,omitempty"`
	Exercises  json.RawMessage `json:"exercises,omitempty" swaggertype:"object"`
	IsActive   *bool           `json:"is_active,omitempty"`
}

// GeneratePlanRequest задаёт необязательные параметры генерации. Тело может отсутствовать.
type GeneratePlanRequest struct {
	PlanType *string `json:"plan_type,omitempty"`
}

// PlanResponse представляет тренировочный план.
type PlanResponse struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	PlanType   string            `json:"plan_type"`
	Difficulty string            `json:"difficulty"`
	Exercises  training.Document `json:"exercises"`
	CreatedAt  time.Time         `json:"created_at"`
	IsActive   bool              `json:"is_active"`
}

// PlanListResponse содержит планы пользователя, новые первыми.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int            `json:"total"`
}

// SchemaViolationDetails указывает, где документ разошёлся со схемой.
type SchemaViolationDetails struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func toPlanResponse(p *training.Plan) PlanResponse {
	doc := p.Exercises
	if doc.Days == nil {
		doc.Days = []training.Day{}
	}
	return PlanResponse{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		PlanType:   string(p.PlanType),
		Difficulty: string(p.Difficulty),
		Exercises:  doc,
		CreatedAt:  p.CreatedAt,
		IsActive:   p.IsActive,
	}
}
