// Package analytics keeps an in-memory log of recent searches and
// summarizes it for the dashboard endpoint. Nothing is written to disk.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

const (
	maxEventsToKeep = 10000 // Keep last 10k events
	topQueriesLimit = 5
)

// Service implements analytics tracking and reporting
type Service struct {
	mutex        sync.RWMutex
	events       []model.SearchEvent
	indexManager services.IndexManager
	now          func() time.Time
}

// NewService creates a new analytics service
func NewService(indexManager services.IndexManager) *Service {
	return &Service{
		events:       make([]model.SearchEvent, 0),
		indexManager: indexManager,
		now:          time.Now,
	}
}

// ClassifySearch derives the search type of a result.
func ClassifySearch(result services.SearchResult) string {
	if len(result.Hits) == 0 {
		return model.SearchTypeNoMatch
	}
	if result.Hits[0].Score == 0 {
		return model.SearchTypeExact
	}
	return model.SearchTypeFuzzy
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.Timestamp = s.now()
	s.events = append(s.events, event)

	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
	return nil
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	last24hEvents := s.filterEventsByTime(s.events, s.now().Add(-24*time.Hour))
	usage := s.getIndexUsage(s.events)

	totalRecords := 0
	for _, stats := range usage {
		totalRecords += stats.RecordCount
	}

	return model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		AvgResponseTime:          calculateAvgResponseTime(s.events),
		TotalRecords:             totalRecords,
		ActiveIndexes:            len(usage),
		SearchPerformance24h:     getHourlyPerformance(last24hEvents),
		PopularSearches:          topQueries(s.events, func(model.SearchEvent) bool { return true }),
		ZeroResultQueries:        topQueries(s.events, func(e model.SearchEvent) bool { return e.ResultCount == 0 }),
		IndexUsage:               usage,
		ResponseTimeDistribution: getResponseTimeDistribution(s.events),
		SearchTypes:              getSearchTypeStats(s.events),
	}, nil
}

// filterEventsByTime returns events after the given time
func (s *Service) filterEventsByTime(events []model.SearchEvent, after time.Time) []model.SearchEvent {
	var filtered []model.SearchEvent
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// calculateAvgResponseTime calculates average response time in microseconds
func calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Microseconds()
}

func getHourlyPerformance(events []model.SearchEvent) []model.SearchPerformanceHourly {
	hourlyData := make(map[int][]model.SearchEvent)
	for _, event := range events {
		hour := event.Timestamp.Hour()
		hourlyData[hour] = append(hourlyData[hour], event)
	}

	performance := make([]model.SearchPerformanceHourly, 0, 24)
	for hour := 0; hour < 24; hour++ {
		performance = append(performance, model.SearchPerformanceHourly{
			Hour:            hour,
			SearchCount:     len(hourlyData[hour]),
			AvgResponseTime: calculateAvgResponseTime(hourlyData[hour]),
		})
	}
	return performance
}

// topQueries returns the most frequent queries among events accepted by keep.
// Equal counts are ordered alphabetically.
func topQueries(events []model.SearchEvent, keep func(model.SearchEvent) bool) []model.PopularSearch {
	queryCounts := make(map[string]int)
	for _, event := range events {
		if event.Query != "" && keep(event) {
			queryCounts[event.Query]++
		}
	}

	queries := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		queries = append(queries, model.PopularSearch{Query: query, SearchCount: count})
	}

	sort.Slice(queries, func(i, j int) bool {
		if queries[i].SearchCount != queries[j].SearchCount {
			return queries[i].SearchCount > queries[j].SearchCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > topQueriesLimit {
		queries = queries[:topQueriesLimit]
	}
	return queries
}

// getIndexUsage returns usage statistics for each live index
func (s *Service) getIndexUsage(events []model.SearchEvent) []model.IndexStats {
	indexSearchCounts := make(map[string]int)
	for _, event := range events {
		indexSearchCounts[event.IndexName]++
	}

	indexes := s.indexManager.ListIndexes()
	usage := make([]model.IndexStats, 0, len(indexes))
	for _, indexName := range indexes {
		recordCount := 0
		if accessor, err := s.indexManager.GetIndex(indexName); err == nil && accessor != nil {
			recordCount = accessor.RecordCount()
		}

		usage = append(usage, model.IndexStats{
			IndexName:   indexName,
			RecordCount: recordCount,
			SearchCount: indexSearchCounts[indexName],
		})
	}
	return usage
}

func getResponseTimeDistribution(events []model.SearchEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)
	if total == 0 {
		return dist
	}

	for _, event := range events {
		switch {
		case event.ResponseTime <= time.Millisecond:
			dist.Bucket0To1ms++
		case event.ResponseTime <= 10*time.Millisecond:
			dist.Bucket1To10ms++
		case event.ResponseTime <= 100*time.Millisecond:
			dist.Bucket10To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	dist.Percentage0To1 = float64(dist.Bucket0To1ms) / float64(total) * 100
	dist.Percentage1To10 = float64(dist.Bucket1To10ms) / float64(total) * 100
	dist.Percentage10To100 = float64(dist.Bucket10To100ms) / float64(total) * 100
	dist.Percentage100Plus = float64(dist.Bucket100msPlus) / float64(total) * 100
	return dist
}

func getSearchTypeStats(events []model.SearchEvent) model.SearchTypeStats {
	stats := model.SearchTypeStats{}
	for _, event := range events {
		switch event.SearchType {
		case model.SearchTypeExact:
			stats.ExactMatch++
		case model.SearchTypeFuzzy:
			stats.FuzzyMatch++
		case model.SearchTypeNoMatch:
			stats.NoMatch++
		}
	}
	return stats
}
