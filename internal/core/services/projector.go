package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// PreviewLength is the number of runes of the executive summary kept in a preview.
const PreviewLength = 200

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// FormatDate renders t as a Dutch long date, e.g. "11 maart 2025".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}

// Preview returns the first PreviewLength runes of text, marking truncation.
func Preview(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return strings.TrimRight(string(runes[:PreviewLength]), " ") + "..."
}

// Project derives the display form of doc. The input is not modified and
// the result shares no mutable slices with it.
func Project(doc *domain.Document) domain.ProjectedDocument {
	s := &doc.Summary
	topics := make([]domain.ProjectedTopic, 0, len(s.Topics))
	for i := range s.Topics {
		topics = append(topics, projectTopic(&s.Topics[i]))
	}

	return domain.ProjectedDocument{
		ID:                doc.ID,
		Title:             doc.Title,
		FormattedDate:     FormatDate(doc.Date),
		Preview:           Preview(s.ExecutiveSummary),
		ExecutiveSummary:  s.ExecutiveSummary,
		PoliticalDynamics: s.PoliticalDynamics,
		Decisions:         slices.Clone(s.Decisions),
		NextSteps:         slices.Clone(s.NextSteps),
		TopicCount:        len(s.Topics),
		DecisionCount:     len(s.Decisions),
		NextStepCount:     len(s.NextSteps),
		HasTopics:         len(s.Topics) > 0,
		HasDecisions:      len(s.Decisions) > 0,
		HasNextSteps:      len(s.NextSteps) > 0,
		Model:             doc.Model(),
		ProcessingError:   s.ProcessingInfo.Error,
		Topics:            topics,
	}
}

// ProjectAll projects every document in order.
func ProjectAll(docs []domain.Document) []domain.ProjectedDocument {
	out := make([]domain.ProjectedDocument, 0, len(docs))
	for i := range docs {
		out = append(out, Project(&docs[i]))
	}
	return out
}

func projectTopic(t *domain.Topic) domain.ProjectedTopic {
	names := make([]string, 0, len(t.Positions))
	for party := range t.Positions {
		names = append(names, party)
	}
	sort.Strings(names)

	entries := make([]domain.PartyEntry, 0, len(names))
	for _, party := range names {
		pos := domain.UnwrapPosition(t.Positions[party])
		entries = append(entries, domain.PartyEntry{
			Party:     party,
			Color:     domain.PartyColor(party),
			Statement: pos.Statement,
			Proposals: slices.Clone(pos.Proposals),
			Reasoning: pos.Reasoning,
			Evidence:  pos.Evidence,
		})
	}

	return domain.ProjectedTopic{
		Name:    t.Name,
		Summary: t.Summary,
		Outcome: t.Outcome,
		Context: t.Context.Fields(),
		Parties: entries,
	}
}
