package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe reporting the active advice source.
type HealthHandler struct {
	adviceSource func() string // Reports "llm" or "mock"
}

// NewHealthHandler constructs a HealthHandler with the provided source
// reporter.
//
// Parameters:
//   - adviceSource (func() string): Returns the advice source the service
//     currently runs on. Mock mode is a designed, fully serving state, so
//     readiness never degrades to 503 over it; the probe only surfaces
//     which mode is active.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(adviceSource func() string) *HealthHandler {
	return &HealthHandler{adviceSource: adviceSource}
}

// Register mounts the health and readiness endpoints into the provided
// Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK with the active advice source.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (reports the active advice source)
	// @Summary      Readiness probe
	// @Description  Returns ready along with the active advice source (llm or mock)
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		source := "mock"
		if h.adviceSource != nil {
			source = h.adviceSource()
		}
		c.JSON(200, gin.H{"status": "ready", "advice_source": source})
	})
}
