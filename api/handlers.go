package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-text-toolkit/config"
	"github.com/gcbaptista/go-text-toolkit/model"
	"github.com/gcbaptista/go-text-toolkit/services"
)

// API holds dependencies for API handlers.
type API struct {
	processor services.TextProcessor
	usage     services.UsageTracker
	settings  config.Settings
}

// NewAPI creates a new API handler structure.
func NewAPI(processor services.TextProcessor, usage services.UsageTracker, settings config.Settings) *API {
	settings.ApplyDefaults()
	return &API{
		processor: processor,
		usage:     usage,
		settings:  settings,
	}
}

// SetupRoutes defines all the API routes for the text toolkit.
func SetupRoutes(router *gin.Engine, processor services.TextProcessor, usage services.UsageTracker, settings config.Settings) {
	apiHandler := NewAPI(processor, usage, settings)

	router.Use(RequestIDMiddleware(), CORSMiddleware(), RequestSizeLimitMiddleware(apiHandler.settings.MaxRequestBytes))
	router.NoRoute(SendNotFoundError)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Fuzzy search over caller-supplied candidates
	router.POST("/search", apiHandler.SearchHandler)

	// Text analysis routes
	textRoutes := router.Group("/text")
	{
		textRoutes.POST("/frequency", apiHandler.FrequencyHandler)      // Word frequency table
		textRoutes.POST("/keywords", apiHandler.KeywordsHandler)        // Top keywords
		textRoutes.POST("/reading-time", apiHandler.ReadingTimeHandler) // Reading time estimate
		textRoutes.POST("/analyze", apiHandler.AnalyzeHandler)          // Combined report
	}
}

// track records a handled request, keyed by its request ID.
func (api *API) track(c *gin.Context, event model.UsageEvent, started time.Time) {
	if api.usage == nil {
		return
	}
	event.ID = requestID(c)
	event.ResponseTime = time.Since(started)
	api.usage.Track(event)
}
