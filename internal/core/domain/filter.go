package domain

// TopicFilter is one selectable entry of the topic facet.
type TopicFilter struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	Count    int    `json:"count"`
}

// PartyFilter is one selectable entry of the party facet.
type PartyFilter struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	Color    string `json:"color"`
	Count    int    `json:"count"`
}

// SearchFilter configures text matching.
// The toggles restrict which fields take part in matching; an empty
// Query matches everything.
type SearchFilter struct {
	Query            string `json:"query"`
	IncludeTopics    bool   `json:"includeTopics"`
	IncludePositions bool   `json:"includePositions"`
	IncludeDecisions bool   `json:"includeDecisions"`
	IncludeContext   bool   `json:"includeContext"`
	IncludeReasoning bool   `json:"includeReasoning"`
}

// DefaultSearchFilter returns an empty query with every field enabled.
func DefaultSearchFilter() SearchFilter {
	return SearchFilter{
		IncludeTopics:    true,
		IncludePositions: true,
		IncludeDecisions: true,
		IncludeContext:   true,
		IncludeReasoning: true,
	}
}

// SearchPatch is a partial SearchFilter update. Nil fields keep their value.
type SearchPatch struct {
	Query            *string
	IncludeTopics    *bool
	IncludePositions *bool
	IncludeDecisions *bool
	IncludeContext   *bool
	IncludeReasoning *bool
}

// Apply shallow-merges the patch into f and returns the result.
func (p SearchPatch) Apply(f SearchFilter) SearchFilter {
	if p.Query != nil {
		f.Query = *p.Query
	}
	if p.IncludeTopics != nil {
		f.IncludeTopics = *p.IncludeTopics
	}
	if p.IncludePositions != nil {
		f.IncludePositions = *p.IncludePositions
	}
	if p.IncludeDecisions != nil {
		f.IncludeDecisions = *p.IncludeDecisions
	}
	if p.IncludeContext != nil {
		f.IncludeContext = *p.IncludeContext
	}
	if p.IncludeReasoning != nil {
		f.IncludeReasoning = *p.IncludeReasoning
	}
	return f
}

// Combine returns p overlaid with next: fields set in next win.
func (p SearchPatch) Combine(next SearchPatch) SearchPatch {
	if next.Query != nil {
		p.Query = next.Query
	}
	if next.IncludeTopics != nil {
		p.IncludeTopics = next.IncludeTopics
	}
	if next.IncludePositions != nil {
		p.IncludePositions = next.IncludePositions
	}
	if next.IncludeDecisions != nil {
		p.IncludeDecisions = next.IncludeDecisions
	}
	if next.IncludeContext != nil {
		p.IncludeContext = next.IncludeContext
	}
	if next.IncludeReasoning != nil {
		p.IncludeReasoning = next.IncludeReasoning
	}
	return p
}

// IsEmpty reports whether the patch changes nothing.
func (p SearchPatch) IsEmpty() bool {
	return p.Query == nil && p.IncludeTopics == nil && p.IncludePositions == nil &&
		p.IncludeDecisions == nil && p.IncludeContext == nil && p.IncludeReasoning == nil
}

// QueryPatch is a convenience for a patch that only sets the query.
func QueryPatch(q string) SearchPatch {
	return SearchPatch{Query: &q}
}

// SelectedTopics returns the set of selected topic names.
func SelectedTopics(filters []TopicFilter) map[string]bool {
	set := make(map[string]bool, len(filters))
	for _, f := range filters {
		if f.Selected {
			set[f.Name] = true
		}
	}
	return set
}

// SelectedParties returns the set of selected party names.
func SelectedParties(filters []PartyFilter) map[string]bool {
	set := make(map[string]bool, len(filters))
	for _, f := range filters {
		if f.Selected {
			set[f.Name] = true
		}
	}
	return set
}
