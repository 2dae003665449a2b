package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitness-app/internal/handler/response"
	jwtsvc "fitness-app/pkg/jwt"
	"fitness-app/pkg/logger"
)

const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
	ContextUserRoleKey  = "userRole"
)

// Auth проверяет access-токен из заголовка Authorization: Bearer <token>
// и кладёт данные пользователя в контекст gin.
func Auth(jwtService jwtsvc.Service, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Отсутствует заголовок Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Некорректный формат заголовка Authorization")
			return
		}

		claims, err := jwtService.ParseAccess(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Info("invalid access token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err,
			})
			response.Abort(c, http.StatusUnauthorized, "invalid_token", "Недействительный access-токен")
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Set(ContextUserRoleKey, claims.Role)
		c.Next()
	}
}

// UserID возвращает идентификатор аутентифицированного пользователя.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ContextUserIDKey))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// RequireRole пропускает только пользователей с одной из ролей.
// Ставится после Auth.
func RequireRole(log logger.Logger, allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if r != "" {
			allowed[strings.ToLower(r)] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		role := strings.ToLower(c.GetString(ContextUserRoleKey))
		if _, ok := allowed[role]; !ok {
			log.Warn("access denied", map[string]any{
				"role":    role,
				"path":    c.Request.URL.Path,
				"user_id": c.GetString(ContextUserIDKey),
			})
			response.Abort(c, http.StatusForbidden, "forbidden", "Недостаточно прав для доступа к ресурсу")
			return
		}
		c.Next()
	}
}
