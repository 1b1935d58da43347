package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-text-toolkit/model"
)

// GetAnalyticsHandler handles the request to get usage analytics
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	if api.usage == nil {
		c.JSON(http.StatusOK, model.UsageDashboard{RequestsByOp: map[string]int{}})
		return
	}
	c.JSON(http.StatusOK, api.usage.Dashboard())
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "go-text-toolkit",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
