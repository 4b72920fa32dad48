package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/pkg/helpers"
	"github.com/logitrack/logistics-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth validates the access token and ensures an active session exists in
// Redis. It sets userID and userRole in the Gin context on success; handlers
// rebuild the requester context from those two keys.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		role := claims.Role
		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 {
				response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
				c.Abort()
				return
			}
			// session is authoritative for role; an admin demotion takes
			// effect without waiting for token expiry
			if r := data["role"]; r != "" {
				role = r
			}
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, role)
		c.Next()
	}
}

// RequireAdmin rejects requesters whose role is not admin. It must run
// after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != string(entity.RoleAdmin) {
			response.Error[any](c, http.StatusForbidden, "admin role required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequesterFrom rebuilds the requester context set by Auth.
func RequesterFrom(c *gin.Context) entity.Requester {
	return entity.Requester{
		ID:   c.GetString(CtxUserIDKey),
		Role: entity.Role(c.GetString(CtxUserRoleKey)),
	}
}
