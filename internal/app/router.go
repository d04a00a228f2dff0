// Package app provides router configuration.
package app

import (
	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/http"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if serviceComponents.BackendBreaker != nil {
		healthHandler.RegisterCircuitBreaker("vendor_api", serviceComponents.BackendBreaker)
	}
	if dbComponents != nil {
		if dbComponents.SessionsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_sessions", dbComponents.SessionsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		JWTSecretKey:      cfg.Auth.JWTSecretKey,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		PlanProvider:      serviceComponents.PlanService,
		Orchestrator:      serviceComponents.Orchestrator,
		SessionStore:      serviceComponents.SessionStore,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
