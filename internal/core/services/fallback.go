package services

import (
	"time"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// FallbackDocumentID identifies the built-in sample document.
const FallbackDocumentID = "fallback-sample"

// FallbackWarning is reported while the sample document stands in for the corpus.
const FallbackWarning = "No meeting summaries could be loaded; showing sample content."

// FallbackDocument returns the built-in sample shown when no real
// documents are available. Each call returns a fresh value.
func FallbackDocument() domain.Document {
	return domain.Document{
		ID:    FallbackDocumentID,
		Title: "Voorbeeldvergadering",
		Date:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Summary: domain.Summary{
			ExecutiveSummary: "This is sample content. Add summary files to the configured source to see real meetings.",
			Topics: []domain.Topic{
				{
					Name:    "Getting started",
					Summary: "Summaries are read from the configured source location.",
					Positions: map[string]domain.Position{
						"Digest": domain.PlainPosition("Place *_summary_*.json files or a manifest.json in the source location."),
					},
					Outcome: "Run digest again or press r to reload.",
				},
			},
			NextSteps: []string{"Configure source.location with digest settings set"},
			MeetingInfo: domain.MeetingInfo{
				Title:    "Voorbeeldvergadering",
				ReportID: FallbackDocumentID,
			},
			ProcessingInfo: domain.ProcessingInfo{
				AIModel: domain.UnknownModel,
			},
		},
	}
}
