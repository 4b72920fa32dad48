package router

import (
	"github.com/logitrack/logistics-api/internal/application"
	"github.com/logitrack/logistics-api/internal/container"
	"github.com/logitrack/logistics-api/internal/infrastructure/elastic"
	pginfra "github.com/logitrack/logistics-api/internal/infrastructure/postgres"
	handlers "github.com/logitrack/logistics-api/internal/interface/http"
	"github.com/logitrack/logistics-api/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	packageRepo := pginfra.NewPackageRepository(container.GetPGPool())
	trackingRepo := elastic.NewTrackingRepository(container.GetES(), cfg.ESTrackingIndex)

	userSvc := application.NewUserService(userRepo, logger)
	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRedis(), logger)
	packageSvc := application.NewPackageService(packageRepo, userRepo, container.GetRedis(), container.GetRabbitPub(), logger)
	trackingSvc := application.NewTrackingService(trackingRepo, packageSvc, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	packageHandler := handlers.NewPackageHandler(packageSvc, logger)
	trackingHandler := handlers.NewTrackingHandler(trackingSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewPackageModule(packageHandler, trackingHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
