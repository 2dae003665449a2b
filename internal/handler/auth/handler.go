package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-app/internal/handler/response"
	repo "fitness-app/internal/repository/interfaces"
	authuc "fitness-app/internal/usecase/auth"
	"fitness-app/pkg/logger"
)

// Handler обрабатывает запросы аутентификации.
type Handler struct {
	auth authuc.Service
	log  logger.Logger
}

func NewHandler(auth authuc.Service, log logger.Logger) *Handler {
	return &Handler{auth: auth, log: log}
}

// Register godoc
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Данные регистрации"
// @Success      201   {object}  LoginResponse
// @Failure      400   {object}  response.ErrorEnvelope
// @Failure      409   {object}  response.ErrorEnvelope
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	sess, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailExists):
			response.Error(c, http.StatusConflict, "email_already_exists", "Указанный email уже используется", nil)
		case errors.Is(err, repo.ErrUsernameExists):
			response.Error(c, http.StatusConflict, "username_already_exists", "Указанный никнейм уже используется", nil)
		case errors.Is(err, authuc.ErrWeakPassword):
			response.Error(c, http.StatusBadRequest, "weak_password", "Пароль не соответствует требованиям", err.Error())
		case errors.Is(err, authuc.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "invalid_request", "Не заполнены обязательные поля", nil)
		default:
			h.log.Error("register failed", map[string]any{"email": req.Email, "error": err})
			response.Internal(c)
		}
		return
	}

	c.JSON(http.StatusCreated, toLoginResponse(sess))
}

// Login godoc
// @Summary      Вход по email и паролю
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Учётные данные"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  response.ErrorEnvelope
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidCredentials) {
			// не раскрываем, что именно неверно
			response.Error(c, http.StatusUnauthorized, "invalid_credentials", "Неверный email или пароль", nil)
			return
		}
		h.log.Error("login failed", map[string]any{"email": req.Email, "error": err})
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toLoginResponse(sess))
}

// Refresh godoc
// @Summary      Обновление пары токенов
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RefreshRequest  true  "Refresh-токен"
// @Success      200   {object}  LoginResponse
// @Failure      401   {object}  response.ErrorEnvelope
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidRequest(c, err)
		return
	}

	sess, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, authuc.ErrInvalidRefreshToken) {
			response.Error(c, http.StatusUnauthorized, "invalid_refresh_token", "Недействительный refresh-токен", nil)
			return
		}
		h.log.Error("refresh failed", map[string]any{"error": err})
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, toLoginResponse(sess))
}

func toLoginResponse(s *authuc.Session) LoginResponse {
	return LoginResponse{
		UserID:   s.User.ID.String(),
		Email:    s.User.Email,
		Username: s.User.Username,
		Tokens: TokenPair{
			AccessToken:  s.AccessToken,
			RefreshToken: s.RefreshToken,
		},
	}
}
