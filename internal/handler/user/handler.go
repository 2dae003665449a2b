package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-app/internal/handler/middleware"
	"fitness-app/internal/handler/response"
	repo "fitness-app/internal/repository/interfaces"
	useruc "fitness-app/internal/usecase/user"
	"fitness-app/pkg/logger"
)

// Handler обрабатывает запросы к учётной записи.
type Handler struct {
	users useruc.Service
	log   logger.Logger
}

func NewHandler(users useruc.Service, log logger.Logger) *Handler {
	return &Handler{users: users, log: log}
}

// GetMe godoc
// @Summary   Текущий пользователь
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  AccountResponse
// @Failure   404  {object}  response.ErrorEnvelope
// @Router    /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "GetMe", userID.String(), err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(u))
}

// UpdateMe godoc
// @Summary   Обновить аккаунт
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      AccountUpdateRequest  true  "Изменяемые поля"
// @Success   200   {object}  AccountResponse
// @Failure   409   {object}  response.ErrorEnvelope
// @Router    /users/me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	var req AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	u, err := h.users.UpdateAccount(c.Request.Context(), userID, useruc.AccountUpdateInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.fail(c, "UpdateMe", userID.String(), err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(u))
}

// DeleteMe godoc
// @Summary   Удалить аккаунт
// @Tags      users
// @Security  BearerAuth
// @Success   204
// @Router    /users/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "Требуется аутентификация", nil)
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.fail(c, "DeleteMe", userID.String(), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers godoc
// @Summary   Список пользователей
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  UserListResponse
// @Failure   403  {object}  response.ErrorEnvelope
// @Router    /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "ListUsers", c.GetString(middleware.ContextUserIDKey), err)
		return
	}

	resp := UserListResponse{Users: make([]AccountResponse, 0, len(users)), Total: len(users)}
	for _, u := range users {
		resp.Users = append(resp.Users, toAccountResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, op, userID string, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "user_not_found", "Пользователь не найден", nil)
	case errors.Is(err, repo.ErrEmailExists):
		response.Error(c, http.StatusConflict, "email_already_exists", "Указанный email уже используется", nil)
	case errors.Is(err, repo.ErrUsernameExists):
		response.Error(c, http.StatusConflict, "username_already_exists", "Указанный никнейм уже используется", nil)
	default:
		h.log.Error("user handler failed", map[string]any{"op": op, "user_id": userID, "error": err})
		response.Internal(c)
	}
}
