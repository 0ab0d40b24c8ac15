package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, domain.Stats{ModelBreakdown: map[string]int{}}, stats)
	assert.NotNil(t, stats.ModelBreakdown)
	assert.Nil(t, stats.DateRange)
}

func TestComputeStats(t *testing.T) {
	docs := []domain.Document{
		doc("a", "2025-03-11", topic("Climate", "VVD", "PVV"), topic("Housing", "VVD")),
		doc("b", "2024-11-02", topic("Budget", "SP")),
		doc("c", "2025-01-15"),
	}
	docs[0].Summary.ProcessingInfo.AIModel = "deepseek"
	docs[1].Summary.ProcessingInfo.AIModel = "deepseek"

	stats := ComputeStats(docs)

	assert.Equal(t, 3, stats.TotalDocuments)
	assert.Equal(t, 3, stats.TotalTopics)
	assert.Equal(t, 3, stats.UniqueParties)
	require.NotNil(t, stats.DateRange)
	assert.Equal(t, mustDate("2024-11-02"), stats.DateRange.Earliest)
	assert.Equal(t, mustDate("2025-03-11"), stats.DateRange.Latest)
	assert.Equal(t, map[string]int{"deepseek": 2, domain.UnknownModel: 1}, stats.ModelBreakdown)
}

func TestComputeStats_SingleDocumentRange(t *testing.T) {
	stats := ComputeStats([]domain.Document{doc("a", "2025-03-11")})

	require.NotNil(t, stats.DateRange)
	assert.Equal(t, stats.DateRange.Earliest, stats.DateRange.Latest)
}
