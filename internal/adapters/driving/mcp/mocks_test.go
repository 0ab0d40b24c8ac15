package mcp

import (
	"context"
	"time"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// mockCorpus implements the read side of driving.CorpusService.
// Mutating intents are not used by the MCP server and panic if called.
type mockCorpus struct {
	driving.CorpusService

	snapshot driving.Snapshot
	results  []domain.ProjectedDocument
	queries  []driving.Query
	projects map[string]*domain.ProjectedDocument
	err      error
}

func (m *mockCorpus) Snapshot() driving.Snapshot {
	return m.snapshot
}

func (m *mockCorpus) Query(q driving.Query) []domain.ProjectedDocument {
	m.queries = append(m.queries, q)
	return m.results
}

func (m *mockCorpus) Project(_ context.Context, id string) (*domain.ProjectedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

func sampleDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:    "mar",
			Title: "Commissiedebat Klimaat",
			Date:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			Summary: domain.Summary{
				Topics:         []domain.Topic{{Name: "Climate Policy"}, {Name: "Energy"}},
				ProcessingInfo: domain.ProcessingInfo{AIModel: "deepseek"},
			},
		},
		{
			ID:    "feb",
			Title: "Commissiedebat Wonen",
			Date:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Summary: domain.Summary{
				Topics: []domain.Topic{{Name: "Housing Regulation"}},
			},
		},
	}
}

func projected() domain.ProjectedDocument {
	return domain.ProjectedDocument{
		ID:            "mar",
		Title:         "Commissiedebat Klimaat",
		FormattedDate: "11 maart 2025",
		Preview:       "The committee debated nitrogen policy.",
		Topics: []domain.ProjectedTopic{
			{Name: "Climate Policy", Parties: []domain.PartyEntry{{Party: "VVD"}, {Party: "PVV"}}},
			{Name: "Energy", Parties: []domain.PartyEntry{{Party: "VVD"}, {Party: "D66"}}},
		},
	}
}
