package handlers

import (
	"fmt"

	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/SscSPs/autoinvest_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	trigger AccrualTrigger,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.Account); err != nil {
		return fmt.Errorf("failed to register auth routes: %w", err)
	}

	setupAPIV1Routes(r, cfg, services)
	setupAdminRoutes(r, cfg, services, trigger)
	return nil
}

// setupAPIV1Routes configures the JWT-protected /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account, services.Wallet)
	registerWalletRoutes(v1, services.Wallet)
	registerAssetRoutes(v1, services.Asset)
}

// setupAdminRoutes configures the operator group guarded by the admin key
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	trigger AccrualTrigger,
) {
	admin := r.Group("/api/v1/admin", middleware.AdminKeyAuth(cfg.AdminAPIKey))
	registerAdminRoutes(admin, services.Wallet, trigger)
}
