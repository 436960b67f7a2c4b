package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsehq/meeting-relevance/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	pipelineHandler *PipelineHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, pipelineHandler *PipelineHandler) *Router {
	return &Router{
		cfg:             cfg,
		pipelineHandler: pipelineHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/healthz", rt.healthCheck)

	v1 := e.Group("/v1")
	v1.POST("/pipeline/run", rt.pipelineHandler.TriggerRun)
	v1.GET("/meetings/:transcript_id", rt.pipelineHandler.GetMeeting)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Environment,
	})
}
