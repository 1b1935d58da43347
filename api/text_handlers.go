package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-text-toolkit/internal/tokenizer"
	"github.com/gcbaptista/go-text-toolkit/model"
)

// bindTextRequest binds and validates a model.TextRequest.
func (api *API) bindTextRequest(c *gin.Context) (model.TextRequest, bool) {
	var req model.TextRequest
	if !bindJSON(c, &req) {
		return req, false
	}
	if result := ValidateTextRequest(&req, api.settings.MaxResultsCap); result.HasErrors() {
		SendValidationError(c, result)
		return req, false
	}
	return req, true
}

// FrequencyHandler returns the word-frequency table of the request text.
// Request Body: model.TextRequest
func (api *API) FrequencyHandler(c *gin.Context) {
	started := time.Now()
	req, ok := api.bindTextRequest(c)
	if !ok {
		return
	}

	frequency := api.processor.Frequency(req.Text)

	api.track(c, model.UsageEvent{
		Operation:   model.OperationFrequency,
		InputSize:   len(req.Text),
		ResultCount: len(frequency),
	}, started)

	c.JSON(http.StatusOK, model.FrequencyResponse{
		Frequency:    frequency,
		UniqueTokens: len(frequency),
		TotalTokens:  frequency.Total(),
	})
}

// KeywordsHandler returns the top keywords of the request text.
// Request Body: model.TextRequest
func (api *API) KeywordsHandler(c *gin.Context) {
	started := time.Now()
	req, ok := api.bindTextRequest(c)
	if !ok {
		return
	}

	keywords := api.processor.Keywords(req.Text, req.Limit)

	api.track(c, model.UsageEvent{
		Operation:   model.OperationKeywords,
		InputSize:   len(req.Text),
		ResultCount: len(keywords),
	}, started)

	c.JSON(http.StatusOK, model.KeywordsResponse{Keywords: keywords})
}

// ReadingTimeHandler returns the reading-time estimate of the request text.
// Request Body: model.TextRequest
func (api *API) ReadingTimeHandler(c *gin.Context) {
	started := time.Now()
	req, ok := api.bindTextRequest(c)
	if !ok {
		return
	}

	minutes := api.processor.ReadingTime(req.Text)

	api.track(c, model.UsageEvent{
		Operation:   model.OperationReadingTime,
		InputSize:   len(req.Text),
		ResultCount: 1,
	}, started)

	c.JSON(http.StatusOK, model.ReadingTimeResponse{
		Minutes:   minutes,
		WordCount: tokenizer.CountWords(req.Text),
	})
}

// AnalyzeHandler returns the combined report of the request text.
// Request Body: model.TextRequest
func (api *API) AnalyzeHandler(c *gin.Context) {
	started := time.Now()
	req, ok := api.bindTextRequest(c)
	if !ok {
		return
	}

	report := api.processor.Analyze(req.Text, req.Limit)

	api.track(c, model.UsageEvent{
		Operation:   model.OperationAnalyze,
		InputSize:   len(req.Text),
		ResultCount: len(report.Keywords),
	}, started)

	c.JSON(http.StatusOK, report)
}
