// Package app provides service initialization.
package app

import (
	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/client"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Backend        client.VendorAPI
	BackendBreaker *circuitbreaker.CircuitBreaker
	Planner        service.ParcelPlanner
	PlanService    *service.PlanService
	SessionStore   service.SessionStore
	Orchestrator   *service.Orchestrator
}

// InitializeServices initializes the backend client and business services.
// The session store defaults to in-memory; InitializeDatabase swaps in the
// MongoDB-backed store when the database is enabled.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	backendCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Backend.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Backend.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Backend.CircuitBreakerTimeout,
		Name:             "vendor-api",
	})

	rawClient := client.New(client.Config{
		BaseURL:  cfg.Backend.BaseURL,
		APIToken: cfg.Backend.APIToken,
		Timeout:  cfg.Backend.Timeout,
	})
	backend := client.NewVendorAPIWithCircuitBreaker(rawClient, backendCB)

	var plannerOpts []service.PlannerOption
	if cfg.Planner.DefaultCapacity > 0 {
		plannerOpts = append(plannerOpts, service.WithDefaultCapacity(cfg.Planner.DefaultCapacity))
	}
	planner := service.NewPlannerService(plannerOpts...)

	var planOpts []service.PlanServiceOption
	if cfg.Planner.CacheSize > 0 {
		planOpts = append(planOpts, service.WithPlanCache(cfg.Planner.CacheSize, cfg.Planner.CacheTTL))
	}
	planService := service.NewPlanService(backend, planner, planOpts...)

	var sessionStore service.SessionStore = service.NewMemorySessionStore()
	if dbComponents != nil && dbComponents.SessionsRepo != nil {
		sessionStore = service.NewSessionService(dbComponents.SessionsRepo)
	}

	orchestratorOpts := []service.OrchestratorOption{
		service.WithSessionStore(sessionStore),
	}
	if dbComponents != nil && dbComponents.LoggingService != nil {
		orchestratorOpts = append(orchestratorOpts, service.WithAuditLog(dbComponents.LoggingService))
	}
	orchestrator := service.NewOrchestrator(backend, planService, orchestratorOpts...)

	return &ServiceComponents{
		Backend:        backend,
		BackendBreaker: backendCB,
		Planner:        planner,
		PlanService:    planService,
		SessionStore:   sessionStore,
		Orchestrator:   orchestrator,
	}
}
