package services

import (
	"github.com/verslag-digest/digest/internal/core/domain"
)

// ComputeStats aggregates corpus-wide counts. An empty corpus yields zero
// counts, a nil date range and an empty model breakdown.
func ComputeStats(docs []domain.Document) domain.Stats {
	stats := domain.Stats{
		TotalDocuments: len(docs),
		ModelBreakdown: make(map[string]int),
	}
	parties := make(map[string]struct{})

	for i := range docs {
		doc := &docs[i]
		stats.TotalTopics += len(doc.Summary.Topics)
		for _, topic := range doc.Summary.Topics {
			for party := range topic.Positions {
				parties[party] = struct{}{}
			}
		}
		stats.ModelBreakdown[doc.Model()]++

		if stats.DateRange == nil {
			stats.DateRange = &domain.DateRange{Earliest: doc.Date, Latest: doc.Date}
			continue
		}
		if doc.Date.Before(stats.DateRange.Earliest) {
			stats.DateRange.Earliest = doc.Date
		}
		if doc.Date.After(stats.DateRange.Latest) {
			stats.DateRange.Latest = doc.Date
		}
	}

	stats.UniqueParties = len(parties)
	return stats
}
