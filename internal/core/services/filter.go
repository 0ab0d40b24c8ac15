package services

import (
	"strings"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// Visible returns the documents passing the topic, party and search filters,
// in input order. An empty topic or party selection matches nothing.
func Visible(docs []domain.Document, topics []domain.TopicFilter, parties []domain.PartyFilter, search domain.SearchFilter) []domain.Document {
	selectedTopics := domain.SelectedTopics(topics)
	selectedParties := domain.SelectedParties(parties)

	out := make([]domain.Document, 0, len(docs))
	if len(selectedTopics) == 0 || len(selectedParties) == 0 {
		return out
	}
	for i := range docs {
		doc := &docs[i]
		if doc.HasTopic(selectedTopics) && doc.HasParty(selectedParties) && Matches(doc, search) {
			out = append(out, *doc)
		}
	}
	return out
}

// Matches reports whether doc contains the search query in any enabled field.
// The executive summary and next steps are always searched. A blank query
// matches every document; otherwise surrounding whitespace is part of the
// query.
func Matches(doc *domain.Document, search domain.SearchFilter) bool {
	if strings.TrimSpace(search.Query) == "" {
		return true
	}
	query := strings.ToLower(search.Query)
	for _, text := range searchable(doc, search) {
		if strings.Contains(strings.ToLower(text), query) {
			return true
		}
	}
	return false
}

// searchable assembles the strings eligible for matching.
func searchable(doc *domain.Document, search domain.SearchFilter) []string {
	s := &doc.Summary
	texts := []string{s.ExecutiveSummary}

	for _, topic := range s.Topics {
		if search.IncludeTopics {
			texts = append(texts, topic.Name, topic.Summary)
		}
		if search.IncludeContext {
			texts = append(texts, topic.Context.Fields()...)
		}
		if !search.IncludePositions && !search.IncludeReasoning {
			continue
		}
		for _, p := range topic.Positions {
			pos := domain.UnwrapPosition(p)
			if search.IncludePositions {
				texts = append(texts, pos.Statement)
				texts = append(texts, pos.Proposals...)
			}
			if search.IncludeReasoning {
				texts = append(texts, pos.Reasoning, pos.Evidence)
			}
		}
	}

	if search.IncludeDecisions {
		texts = append(texts, s.Decisions...)
	}
	texts = append(texts, s.NextSteps...)
	return texts
}
