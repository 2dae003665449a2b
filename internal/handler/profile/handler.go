package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "fitness-app/internal/domain/profile"
	"fitness-app/internal/handler/middleware"
	"fitness-app/internal/handler/response"
	repo "fitness-app/internal/repository/interfaces"
	profileuc "fitness-app/internal/usecase/profile"
	"fitness-app/pkg/logger"
)

// Handler обрабатывает запросы к фитнес-профилю.
type Handler struct {
	profiles profileuc.Service
	log      logger.Logger
}

func NewHandler(profiles profileuc.Service, log logger.Logger) *Handler {
	return &Handler{profiles: profiles, log: log}
}

// Get godoc
// @Summary   Фитнес-профиль текущего пользователя
// @Tags      profile
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  ProfileResponse
// @Failure   404  {object}  response.ErrorEnvelope
// @Router    /users/me/profile [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	p, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "profile_not_found", "Профиль ещё не заполнен", nil)
			return
		}
		h.log.Error("get profile failed", map[string]any{"user_id": userID.String(), "error": err})
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

// Upsert godoc
// @Summary   Создать или обновить фитнес-профиль
// @Tags      profile
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      ProfileRequest  true  "Поля профиля"
// @Success   200   {object}  ProfileResponse
// @Failure   400   {object}  response.ErrorEnvelope
// @Router    /users/me/profile [put]
func (h *Handler) Upsert(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	p, err := h.profiles.Upsert(c.Request.Context(), userID, toUpdateInput(req))
	if err != nil {
		switch {
		case domain.IsValidationError(err), errors.Is(err, repo.ErrConstraintViolation):
			response.Error(c, http.StatusBadRequest, "invalid_profile", "Профиль заполнен некорректно", err.Error())
		default:
			h.log.Error("upsert profile failed", map[string]any{"user_id": userID.String(), "error": err})
			response.Internal(c)
		}
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

func toUpdateInput(req ProfileRequest) profileuc.UpdateInput {
	in := profileuc.UpdateInput{
		Weight:           req.Weight,
		Height:           req.Height,
		Age:              req.Age,
		AvailableDays:    req.AvailableDays,
		HealthConditions: req.HealthConditions,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		in.Gender = &g
	}
	if req.ExperienceLevel != nil {
		l := domain.ExperienceLevel(*req.ExperienceLevel)
		in.ExperienceLevel = &l
	}
	if req.FitnessGoal != nil {
		g := domain.FitnessGoal(*req.FitnessGoal)
		in.FitnessGoal = &g
	}
	return in
}
