package services

import (
	"sort"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// FilterState holds the topic and party facets and the search filter.
// It is not safe for concurrent use; CorpusService serialises access.
type FilterState struct {
	topics            []domain.TopicFilter
	parties           []domain.PartyFilter
	search            domain.SearchFilter
	preserveSelection bool
}

// NewFilterState creates an empty filter state with the given search defaults.
// When preserveSelection is set, Rebuild carries selections over by name.
func NewFilterState(search domain.SearchFilter, preserveSelection bool) *FilterState {
	return &FilterState{
		search:            search,
		preserveSelection: preserveSelection,
	}
}

// Topics returns a copy of the topic facet.
func (s *FilterState) Topics() []domain.TopicFilter {
	return append([]domain.TopicFilter(nil), s.topics...)
}

// Parties returns a copy of the party facet.
func (s *FilterState) Parties() []domain.PartyFilter {
	return append([]domain.PartyFilter(nil), s.parties...)
}

// Search returns the current search filter.
func (s *FilterState) Search() domain.SearchFilter {
	return s.search
}

// SetTopicSelected sets the selection of one topic entry.
// It reports false when the name is unknown or nothing changed.
func (s *FilterState) SetTopicSelected(name string, selected bool) bool {
	for i := range s.topics {
		if s.topics[i].Name == name {
			changed := s.topics[i].Selected != selected
			s.topics[i].Selected = selected
			return changed
		}
	}
	return false
}

// SetPartySelected sets the selection of one party entry.
// It reports false when the name is unknown or nothing changed.
func (s *FilterState) SetPartySelected(name string, selected bool) bool {
	for i := range s.parties {
		if s.parties[i].Name == name {
			changed := s.parties[i].Selected != selected
			s.parties[i].Selected = selected
			return changed
		}
	}
	return false
}

// UpdateSearch shallow-merges patch into the search filter.
func (s *FilterState) UpdateSearch(patch domain.SearchPatch) bool {
	next := patch.Apply(s.search)
	changed := next != s.search
	s.search = next
	return changed
}

// Rebuild replaces both facets with the names present in docs.
// Counts are the number of documents mentioning each name.
func (s *FilterState) Rebuild(docs []domain.Document) {
	topicCounts := make(map[string]int)
	partyCounts := make(map[string]int)
	for i := range docs {
		seenTopics := make(map[string]bool)
		seenParties := make(map[string]bool)
		for _, topic := range docs[i].Summary.Topics {
			if !seenTopics[topic.Name] {
				seenTopics[topic.Name] = true
				topicCounts[topic.Name]++
			}
			for party := range topic.Positions {
				if !seenParties[party] {
					seenParties[party] = true
					partyCounts[party]++
				}
			}
		}
	}

	previousTopics := make(map[string]bool, len(s.topics))
	for _, t := range s.topics {
		previousTopics[t.Name] = t.Selected
	}
	previousParties := make(map[string]bool, len(s.parties))
	for _, p := range s.parties {
		previousParties[p.Name] = p.Selected
	}

	topics := make([]domain.TopicFilter, 0, len(topicCounts))
	for _, name := range sortedByCount(topicCounts) {
		topics = append(topics, domain.TopicFilter{
			Name:     name,
			Selected: s.carried(previousTopics, name),
			Count:    topicCounts[name],
		})
	}
	parties := make([]domain.PartyFilter, 0, len(partyCounts))
	for _, name := range sortedByCount(partyCounts) {
		parties = append(parties, domain.PartyFilter{
			Name:     name,
			Selected: s.carried(previousParties, name),
			Color:    domain.PartyColor(name),
			Count:    partyCounts[name],
		})
	}

	s.topics = topics
	s.parties = parties
}

// carried returns the selection a rebuilt entry starts with.
func (s *FilterState) carried(previous map[string]bool, name string) bool {
	if !s.preserveSelection {
		return true
	}
	selected, ok := previous[name]
	return !ok || selected
}

// sortedByCount orders names by count descending, then name ascending.
func sortedByCount(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
