package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"agropulse/config"
	"agropulse/internal/api"
	"agropulse/internal/catalog"
	"agropulse/internal/domain/models"
	"agropulse/internal/llm"
	"agropulse/internal/mockseries"
	"agropulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and
// any error encountered during initialization.
//
// Responsibilities:
//   - Builds the LLM completion client from configuration.
//   - Initializes the mock series generator and the crop catalog.
//   - Creates the advisory service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (idle upstream
//     connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	if cfg.Mock.DefaultDays <= 0 {
		return nil, nil, fmt.Errorf("invalid mock configuration: default days must be positive, got %d", cfg.Mock.DefaultDays)
	}

	// Upstream completion client; an empty API key selects mock mode
	client := llm.NewClient(cfg.LLM)

	// Mock data dependencies
	generator := mockseries.New(nil)
	crops := catalog.NewCropRepository()

	// Initialize service layer (business logic)
	svc := service.NewAdvisoryService(client, generator, crops, cfg.Mock.DefaultDays)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() string {
		if cfg.LLM.Configured() {
			return models.SourceLLM
		}
		return models.SourceMock
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}
