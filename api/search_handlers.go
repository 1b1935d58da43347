package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gcbaptista/go-text-toolkit/model"
)

// SearchHandler ranks the request's candidates against its query.
// Request Body: model.SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	started := time.Now()

	var req model.SearchRequest
	if !bindJSON(c, &req) {
		return
	}

	if result := ValidateSearchRequest(&req, api.settings.MaxResultsCap); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results := api.processor.Search(req.Candidates, req.Query, req.MaxResults)

	api.track(c, model.UsageEvent{
		Operation:   model.OperationSearch,
		Query:       req.Query,
		InputSize:   len(req.Candidates),
		ResultCount: len(results),
	}, started)

	c.JSON(http.StatusOK, model.SearchResponse{
		Results: results,
		Total:   len(results),
		Took:    time.Since(started).Microseconds(),
		QueryID: uuid.New().String(),
	})
}
