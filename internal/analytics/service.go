package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-text-toolkit/model"
)

const (
	maxEventsToKeep    = 10000 // Keep last 10k events for performance
	maxPopularSearches = 10
)

// Service implements in-memory usage tracking and reporting.
// It implements the services.UsageTracker interface.
type Service struct {
	mutex  sync.RWMutex
	events []model.UsageEvent
	now    func() time.Time
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		events: make([]model.UsageEvent, 0),
		now:    time.Now,
	}
}

// Track records a handled request. Missing IDs and timestamps are filled in.
func (s *Service) Track(event model.UsageEvent) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// Events returns a copy of the retained events, oldest first.
func (s *Service) Events() []model.UsageEvent {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]model.UsageEvent, len(s.events))
	copy(events, s.events)
	return events
}

// Dashboard returns usage analytics over every retained event
func (s *Service) Dashboard() model.UsageDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	totalBytes := 0
	byOp := make(map[string]int)
	for _, event := range s.events {
		byOp[event.Operation]++
		if event.Operation != model.OperationSearch {
			totalBytes += event.InputSize
		}
	}

	return model.UsageDashboard{
		TotalRequests:            len(s.events),
		RequestsByOp:             byOp,
		AvgResponseTimeUs:        calculateAvgResponseTime(s.events),
		TotalInputBytes:          totalBytes,
		PopularSearches:          getPopularSearches(s.events),
		ResponseTimeDistribution: getResponseTimeDistribution(s.events),
	}
}

// calculateAvgResponseTime calculates average response time for events in microseconds
func calculateAvgResponseTime(events []model.UsageEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	avgDuration := total / time.Duration(len(events))
	return avgDuration.Microseconds()
}

// getPopularSearches returns the most frequent search queries, ties in query order
func getPopularSearches(events []model.UsageEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)

	for _, event := range events {
		if event.Operation == model.OperationSearch && event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > maxPopularSearches {
		popular = popular[:maxPopularSearches]
	}
	return popular
}

// getResponseTimeDistribution returns response time distribution
func getResponseTimeDistribution(events []model.UsageEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		switch {
		case event.ResponseTime < time.Millisecond:
			dist.Bucket0To1ms++
		case event.ResponseTime < 10*time.Millisecond:
			dist.Bucket1To10ms++
		case event.ResponseTime < 100*time.Millisecond:
			dist.Bucket10To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	// Calculate percentages
	dist.Percentage0To1 = float64(dist.Bucket0To1ms) / float64(total) * 100
	dist.Percentage1To10 = float64(dist.Bucket1To10ms) / float64(total) * 100
	dist.Percentage10To100 = float64(dist.Bucket10To100ms) / float64(total) * 100
	dist.Percentage100Plus = float64(dist.Bucket100msPlus) / float64(total) * 100

	return dist
}
