package model

import "time"

// Operation names recorded in usage events.
const (
	OperationSearch      = "search"
	OperationFrequency   = "frequency"
	OperationKeywords    = "keywords"
	OperationReadingTime = "reading_time"
	OperationAnalyze     = "analyze"
)

// UsageEvent represents a single handled request for analytics tracking
type UsageEvent struct {
	ID           string        `json:"id"`
	Operation    string        `json:"operation"`       // one of the Operation* constants
	Query        string        `json:"query,omitempty"` // search query, empty for text operations
	InputSize    int           `json:"input_size"`      // candidates for search, bytes of text otherwise
	ResultCount  int           `json:"result_count"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search queries
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To1ms      int     `json:"bucket_0_1ms"`
	Bucket1To10ms     int     `json:"bucket_1_10ms"`
	Bucket10To100ms   int     `json:"bucket_10_100ms"`
	Bucket100msPlus   int     `json:"bucket_100ms_plus"`
	Percentage0To1    float64 `json:"percentage_0_1"`
	Percentage1To10   float64 `json:"percentage_1_10"`
	Percentage10To100 float64 `json:"percentage_10_100"`
	Percentage100Plus float64 `json:"percentage_100_plus"`
}

// UsageDashboard represents the complete usage analytics data
type UsageDashboard struct {
	// Summary metrics
	TotalRequests     int            `json:"total_requests"`
	RequestsByOp      map[string]int `json:"requests_by_operation"`
	AvgResponseTimeUs int64          `json:"avg_response_time_us"` // in microseconds
	TotalInputBytes   int            `json:"total_input_bytes"`

	// Detailed analytics
	PopularSearches          []PopularSearch          `json:"popular_searches"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
