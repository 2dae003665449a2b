package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-app/pkg/logger"
)

const dbPingTimeout = 5 * time.Second

// Pinger проверяет доступность базы данных.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает health check запросы
type Handler struct {
	db     Pinger
	appEnv string
	log    logger.Logger
}

// NewHandler создает новый экземпляр health handler
func NewHandler(db Pinger, appEnv string, log logger.Logger) *Handler {
	return &Handler{
		db:     db,
		appEnv: appEnv,
		log:    log,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health godoc
// @Summary  Проверка, что процесс жив
// @Tags     health
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Сервер работает",
	})
}

// HealthDB godoc
// @Summary  Проверка подключения к базе данных
// @Tags     health
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Failure  503  {object}  HealthResponse
// @Router   /health/db [get]
func (h *Handler) HealthDB(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "error",
			Message: "База данных не инициализирована",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database health check failed", map[string]any{"error": err})

		// детали ошибки наружу только вне production
		message := "База данных недоступна"
		if h.appEnv != "production" {
			message = "База данных недоступна: " + err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "error",
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "База данных доступна",
	})
}
