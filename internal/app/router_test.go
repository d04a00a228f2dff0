//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/mocks"
	"github.com/guttosm/fulfillment-service/internal/service"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.NotNil(t, components.Config.PlanProvider)
				assert.NotNil(t, components.Config.Orchestrator)
				assert.Nil(t, components.Config.LoggingService)
			},
		},
		{
			name: "creates router with auth enabled",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.EnableAuth)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				SessionsRepo:   new(mocks.MockSessionsRepositoryInterface),
				LoggingService: service.NewLoggingService(new(mocks.MockLogsRepositoryInterface)),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Backend = testConfig().Backend

			serviceComponents := InitializeServices(cfg, tt.dbComponents)
			components := InitializeRouter(serviceComponents, tt.dbComponents, cfg)

			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeRouter_MongoSessionStore(t *testing.T) {
	dbComponents := &DatabaseComponents{
		SessionsRepo: new(mocks.MockSessionsRepositoryInterface),
	}

	cfg := testConfig()
	serviceComponents := InitializeServices(cfg, dbComponents)
	components := InitializeRouter(serviceComponents, dbComponents, cfg)

	assert.NotNil(t, components.Config.SessionStore)
	assert.IsType(t, &service.SessionService{}, components.Config.SessionStore)
}
