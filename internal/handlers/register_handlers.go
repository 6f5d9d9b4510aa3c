package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/wazeer/wazeer_backend/cmd/docs"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/middleware"
	"github.com/wazeer/wazeer_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.AppConfig, services *portssvc.ServiceContainer) {
	r.GET("/health", healthCheck)
	r.GET("/metrics", middleware.MetricsHandler())

	registerAuthRoutes(r, cfg, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.AppConfig, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMaterialRoutes(v1, services.Material)
	registerSupplierRoutes(v1, services.Supplier)
	registerPurchaseRoutes(v1, services.Purchase)
	registerExpenseRoutes(v1, services.Expense)
	registerTagRoutes(v1, services.Tag)
	registerReportingRoutes(v1, services.Reporting, services.Export)
}

// setupSwaggerRoutes serves the OpenAPI docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.AppConfig) {
	if cfg.IsProd {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
