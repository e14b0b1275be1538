package httpserver

import (
	"github.com/gin-gonic/gin"

	"engage-api/pkg/errors"
	"engage-api/pkg/response"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the engagement service is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "PostgreSQL connection failed", 503))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "engage-api",
		"version":  "1.0.0",
		"postgres": "connected",
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the engagement service is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "PostgreSQL connection not available", 503))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  "engage-api",
		"version":  "1.0.0",
		"postgres": "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the engagement service is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "engage-api",
		"version": "1.0.0",
	})
}
