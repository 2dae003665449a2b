package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"fitness-app/internal/handler/response"
	"fitness-app/pkg/logger"
)

// Recovery перехватывает панику в обработчике и отвечает 500.
// Детали паники уходят клиенту только в debug-режиме gin.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered", map[string]any{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"client_ip": c.ClientIP(),
			"panic":     fmt.Sprintf("%v", recovered),
			"stack":     string(debug.Stack()),
		})

		message := "Произошла непредвиденная ошибка. Пожалуйста, попробуйте позже."
		if gin.Mode() == gin.DebugMode {
			message = fmt.Sprintf("%v", recovered)
		}
		response.Abort(c, http.StatusInternalServerError, "internal_error", message)
	})
}
