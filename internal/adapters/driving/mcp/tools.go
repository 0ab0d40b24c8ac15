package mcp

import (
	"context"
	"slices"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/verslag-digest/digest/internal/core/domain"
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

const defaultLimit = 10

// SearchInput is the input schema for the search_meetings tool.
type SearchInput struct {
	Query   string   `json:"query,omitempty" jsonschema:"case-insensitive text to look for in the summaries"`
	Topics  []string `json:"topics,omitempty" jsonschema:"only meetings discussing one of these topics"`
	Parties []string `json:"parties,omitempty" jsonschema:"only meetings where one of these parties took a position"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_meetings tool.
type SearchOutput struct {
	Results []MeetingResult `json:"results"`
	Count   int             `json:"count"`
}

// MeetingResult is one matching meeting summary.
type MeetingResult struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Preview string   `json:"preview"`
	Topics  []string `json:"topics"`
	Parties []string `json:"parties"`
	URI     string   `json:"uri"`
}

// StatsInput is the input schema for the meeting_stats tool.
type StatsInput struct{}

// StatsOutput is the output schema for the meeting_stats tool.
type StatsOutput struct {
	TotalDocuments int                  `json:"total_documents"`
	TotalTopics    int                  `json:"total_topics"`
	UniqueParties  int                  `json:"unique_parties"`
	Earliest       string               `json:"earliest,omitempty"`
	Latest         string               `json:"latest,omitempty"`
	Models         map[string]int       `json:"models"`
	Topics         []domain.TopicFilter `json:"topics"`
	Parties        []domain.PartyFilter `json:"parties"`
	Warning        string               `json:"warning,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.inner, &mcp.Tool{
		Name:        "search_meetings",
		Description: "Search the loaded meeting summaries by text, topic and party",
	}, s.handleSearch)

	mcp.AddTool(s.inner, &mcp.Tool{
		Name:        "meeting_stats",
		Description: "Corpus statistics and the available topics and parties",
	}, s.handleStats)
}

// handleSearch handles the search_meetings tool invocation.
func (s *Server) handleSearch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	q := driving.Query{
		Topics:  input.Topics,
		Parties: input.Parties,
		Limit:   limit,
	}
	if input.Query != "" {
		q.Search.Query = &input.Query
	}

	docs := s.ports.Corpus.Query(q)
	output := SearchOutput{
		Results: make([]MeetingResult, len(docs)),
		Count:   len(docs),
	}
	for i := range docs {
		output.Results[i] = meetingResult(&docs[i])
	}
	return nil, output, nil
}

// handleStats handles the meeting_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	snap := s.ports.Corpus.Snapshot()
	stats := snap.Stats

	output := StatsOutput{
		TotalDocuments: stats.TotalDocuments,
		TotalTopics:    stats.TotalTopics,
		UniqueParties:  stats.UniqueParties,
		Models:         stats.ModelBreakdown,
		Topics:         snap.Topics,
		Parties:        snap.Parties,
		Warning:        snap.Warning,
	}
	if r := stats.DateRange; r != nil {
		output.Earliest = r.Earliest.Format(time.DateOnly)
		output.Latest = r.Latest.Format(time.DateOnly)
	}
	return nil, output, nil
}

func meetingResult(doc *domain.ProjectedDocument) MeetingResult {
	result := MeetingResult{
		ID:      doc.ID,
		Title:   doc.Title,
		Date:    doc.FormattedDate,
		Preview: doc.Preview,
		Topics:  make([]string, 0, len(doc.Topics)),
		Parties: []string{},
		URI:     meetingURI(doc.ID),
	}
	for _, topic := range doc.Topics {
		result.Topics = append(result.Topics, topic.Name)
		for _, entry := range topic.Parties {
			if !slices.Contains(result.Parties, entry.Party) {
				result.Parties = append(result.Parties, entry.Party)
			}
		}
	}
	slices.Sort(result.Parties)
	return result
}
