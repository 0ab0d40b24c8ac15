package domain

import "time"

// Stats summarises a corpus.
type Stats struct {
	TotalDocuments int            `json:"totalDocuments"`
	TotalTopics    int            `json:"totalTopics"`
	UniqueParties  int            `json:"uniqueParties"`
	DateRange      *DateRange     `json:"dateRange"`
	ModelBreakdown map[string]int `json:"modelBreakdown"`
}

// DateRange is the span of document dates.
type DateRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}
