package model

import "time"

// Search types recorded for analytics.
const (
	SearchTypeExact   = "exact_match" // best hit matched without edits at the start of a field
	SearchTypeFuzzy   = "fuzzy_match"
	SearchTypeNoMatch = "no_match"
)

// SearchEvent represents a single search event for analytics tracking
type SearchEvent struct {
	IndexName    string        `json:"index_name"`
	Query        string        `json:"query"`
	SearchType   string        `json:"search_type"` // "exact_match", "fuzzy_match", "no_match"
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	BestScore    float64       `json:"best_score"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for a repeated query
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// IndexStats represents statistics for a specific index
type IndexStats struct {
	IndexName   string `json:"index_name"`
	RecordCount int    `json:"record_count"`
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

// SearchTypeStats counts searches by how their best hit matched
type SearchTypeStats struct {
	ExactMatch int `json:"exact_match"`
	FuzzyMatch int `json:"fuzzy_match"`
	NoMatch    int `json:"no_match"`
}

// SearchPerformanceHourly represents hourly search performance data
type SearchPerformanceHourly struct {
	Hour            int   `json:"hour"`
	SearchCount     int   `json:"search_count"`
	AvgResponseTime int64 `json:"avg_response_time"` // in microseconds
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics
	TotalSearches   int   `json:"total_searches"`
	AvgResponseTime int64 `json:"avg_response_time"` // in microseconds
	TotalRecords    int   `json:"total_records"`
	ActiveIndexes   int   `json:"active_indexes"`

	// Detailed analytics
	SearchPerformance24h     []SearchPerformanceHourly `json:"search_performance_24h"`
	PopularSearches          []PopularSearch           `json:"popular_searches"`
	ZeroResultQueries        []PopularSearch           `json:"zero_result_queries"`
	IndexUsage               []IndexStats              `json:"index_usage"`
	ResponseTimeDistribution ResponseTimeDistribution  `json:"response_time_distribution"`
	SearchTypes              SearchTypeStats           `json:"search_types"`
}
