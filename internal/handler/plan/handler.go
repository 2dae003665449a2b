package plan

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitness-app/internal/domain/training"
	"fitness-app/internal/handler/middleware"
	"fitness-app/internal/handler/response"
	repo "fitness-app/internal/repository/interfaces"
	planuc "fitness-app/internal/usecase/plan"
	"fitness-app/pkg/logger"
)

// Handler обрабатывает запросы к тренировочным планам.
type Handler struct {
	plans planuc.Service
	log   logger.Logger
}

func NewHandler(plans planuc.Service, log logger.Logger) *Handler {
	return &Handler{plans: plans, log: log}
}

// List godoc
// @Summary   Планы текущего пользователя
// @Tags      training-plans
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  PlanListResponse
// @Router    /training-plans [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	plans, err := h.plans.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "List", userID, err)
		return
	}

	resp := PlanListResponse{Plans: make([]PlanResponse, 0, len(plans)), Total: len(plans)}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, toPlanResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary   Сохранить план, составленный вручную
// @Tags      training-plans
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      CreatePlanRequest  true  "План"
// @Success   201   {object}  PlanResponse
// @Failure   400   {object}  response.ErrorEnvelope
// @Router    /training-plans [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	p, err := h.plans.Create(c.Request.Context(), userID, planuc.CreateInput{
		PlanType:   training.PlanType(req.PlanType),
		Difficulty: training.Difficulty(req.Difficulty),
		Exercises:  req.Exercises,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.fail(c, "Create", userID, err)
		return
	}
	c.JSON(http.StatusCreated, toPlanResponse(p))
}

// Get godoc
// @Summary   План по идентификатору
// @Tags      training-plans
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      string  true  "ID плана"
// @Success   200  {object}  PlanResponse
// @Failure   404  {object}  response.ErrorEnvelope
// @Router    /training-plans/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	planID, ok := planIDParam(c)
	if !ok {
		return
	}

	p, err := h.plans.Get(c.Request.Context(), userID, planID)
	if err != nil {
		h.fail(c, "Get", userID, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(p))
}

// Update godoc
// @Summary   Обновить план
// @Tags      training-plans
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      string             true  "ID плана"
// @Param     body  body      UpdatePlanRequest  true  "Изменяемые поля"
// @Success   200   {object}  PlanResponse
// @Failure   400   {object}  response.ErrorEnvelope
// @Failure   404   {object}  response.ErrorEnvelope
// @Router    /training-plans/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	planID, ok := planIDParam(c)
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	in := planuc.UpdateInput{Exercises: req.Exercises, IsActive: req.IsActive}
	if req.PlanType != nil {
		t := training.PlanType(*req.PlanType)
		in.PlanType = &t
	}
	if req.Difficulty != nil {
		d := training.Difficulty(*req.Difficulty)
		in.Difficulty = &d
	}

	p, err := h.plans.Update(c.Request.Context(), userID, planID, in)
	if err != nil {
		h.fail(c, "Update", userID, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(p))
}

// Delete godoc
// @Summary   Удалить план
// @Tags      training-plans
// @Security  BearerAuth
// @Param     id  path  string  true  "ID плана"
// @Success   204
// @Failure   404  {object}  response.ErrorEnvelope
// @Router    /training-plans/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	planID, ok := planIDParam(c)
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), userID, planID); err != nil {
		h.fail(c, "Delete", userID, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate godoc
// @Summary      Сгенерировать план по профилю
// @Description  Строит план через модель по фитнес-профилю пользователя и сохраняет его.
// @Tags         training-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      GeneratePlanRequest  false  "Параметры генерации"
// @Success      201   {object}  PlanResponse
// @Failure      400   {object}  response.ErrorEnvelope
// @Failure      404   {object}  response.ErrorEnvelope
// @Failure      502   {object}  response.ErrorEnvelope
// @Router       /training-plans/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.InvalidRequest(c, err)
		return
	}

	in := planuc.GenerateInput{}
	if req.PlanType != nil {
		t := training.PlanType(*req.PlanType)
		in.PlanType = &t
	}

	p, err := h.plans.Generate(c.Request.Context(), userID, in)
	if err != nil {
		h.fail(c, "Generate", userID, err)
		return
	}
	c.JSON(http.StatusCreated, toPlanResponse(p))
}

func (h *Handler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
	}
	return id, ok
}

func planIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_plan_id", "Некорректный идентификатор плана", nil)
		return uuid.Nil, false
	}
	return id, true
}

// fail переводит ошибку сервиса планов в HTTP-ответ.
func (h *Handler) fail(c *gin.Context, op string, userID uuid.UUID, err error) {
	if errors.Is(err, repo.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "plan_not_found", "План не найден", nil)
		return
	}

	kind := planuc.KindOf(err)
	fields := map[string]any{"op": op, "user_id": userID.String(), "kind": kind, "error": err}

	switch kind {
	case planuc.KindTransportFailure:
		h.log.Warn("plan request failed", fields)
		response.Error(c, http.StatusBadGateway, kind, "Сервис генерации недоступен", nil)
	case planuc.KindMalformedResponse:
		h.log.Warn("plan request failed", fields)
		response.Error(c, http.StatusBadGateway, kind, "Сервис генерации вернул некорректный JSON", nil)
	case planuc.KindSchemaViolation:
		h.log.Warn("plan request failed", fields)
		response.Error(c, http.StatusBadGateway, kind, "Сервис генерации вернул план неверной структуры", schemaDetails(err))
	case planuc.KindConstraintViolation:
		if training.IsConstraintError(err) {
			response.Error(c, http.StatusBadRequest, "invalid_plan", "Недопустимый тип или сложность плана", err.Error())
			return
		}
		// текст ошибки хранилища наружу не отдаём
		h.log.Warn("plan rejected by storage", fields)
		response.Error(c, http.StatusBadRequest, "invalid_plan", "План нарушает ограничения хранилища", nil)
	case planuc.KindInvalidDocument:
		var details any = err.Error()
		if d := schemaDetails(err); d != nil {
			details = d
		}
		response.Error(c, http.StatusBadRequest, kind, "Документ упражнений не соответствует схеме", details)
	case planuc.KindProfileRequired:
		response.Error(c, http.StatusNotFound, kind, "Сначала заполните фитнес-профиль", nil)
	default:
		h.log.Error("plan request failed", fields)
		response.Internal(c)
	}
}

func schemaDetails(err error) *SchemaViolationDetails {
	var se *training.SchemaError
	if !errors.As(err, &se) {
		return nil
	}
	return &SchemaViolationDetails{Path: se.Path, Reason: se.Reason}
}
