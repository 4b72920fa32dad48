package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logitrack/logistics-api/internal/container"
	handlers "github.com/logitrack/logistics-api/internal/interface/http"
	"github.com/logitrack/logistics-api/internal/interface/middleware"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

// UserModule wires user registration and profile routes.
// Public: POST /api/users (registration)
// Protected: GET /api/users (admin), GET /api/users/:id, PATCH /api/users/:id (admin)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users", middleware.RequireAdmin(), m.Handler.List)
		auth.GET("/users/:id", m.Handler.Get)
		auth.PATCH("/users/:id", middleware.RequireAdmin(), m.Handler.Update)
	}
}
