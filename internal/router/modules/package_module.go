package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/logitrack/logistics-api/internal/container"
	handlers "github.com/logitrack/logistics-api/internal/interface/http"
	"github.com/logitrack/logistics-api/internal/interface/middleware"
	"github.com/logitrack/logistics-api/pkg/helpers"
)

// PackageModule wires the package ledger routes. Everything requires an
// authenticated requester; status mutation additionally requires admin.
type PackageModule struct {
	Packages *handlers.PackageHandler
	Tracking *handlers.TrackingHandler
	JWT      *helpers.JWTManager
}

func NewPackageModule(p *handlers.PackageHandler, t *handlers.TrackingHandler, jwt *helpers.JWTManager) *PackageModule {
	return &PackageModule{Packages: p, Tracking: t, JWT: jwt}
}

func (m *PackageModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/packages", m.Packages.Create)
		auth.GET("/packages", m.Packages.List)
		auth.GET("/packages/my", m.Packages.ListMine)
		auth.GET("/packages/tracking/:trackingCode", m.Packages.GetByTrackingCode)
		auth.GET("/packages/:id", m.Packages.Get)
		auth.PATCH("/packages/:id/status", middleware.RequireAdmin(), m.Packages.UpdateStatus)

		// journal routes address the package by id or tracking code
		auth.POST("/packages/:id/tracking", m.Tracking.Register)
		auth.GET("/packages/:id/tracking", m.Tracking.History)
	}
}
