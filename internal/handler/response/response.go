package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody задаёт единый формат ошибки API: {"error": {...}}.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope оборачивает ErrorBody, используется в документации и тестах.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// Error пишет ошибку в едином формате.
func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorEnvelope{Error: ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// Abort пишет ошибку и прерывает цепочку обработчиков. Для middleware.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: ErrorBody{
		Code:    code,
		Message: message,
	}})
}

// Часто повторяющиеся ответы.

func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal_error", "Внутренняя ошибка сервера", nil)
}

func InvalidRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, "invalid_request", "Некорректное тело запроса", err.Error())
}
