package domain

// ProjectedDocument is a display-ready derivation of a Document.
// It adds no new source-of-truth data.
type ProjectedDocument struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// FormattedDate is the meeting date in the display locale.
	FormattedDate string `json:"formattedDate"`

	// Preview is a fixed-length prefix of the executive summary.
	Preview string `json:"preview"`

	ExecutiveSummary  string   `json:"executiveSummary"`
	PoliticalDynamics string   `json:"politicalDynamics,omitempty"`
	Decisions         []string `json:"decisions,omitempty"`
	NextSteps         []string `json:"nextSteps,omitempty"`

	TopicCount    int `json:"topicCount"`
	DecisionCount int `json:"decisionCount"`
	NextStepCount int `json:"nextStepCount"`

	HasTopics    bool `json:"hasTopics"`
	HasDecisions bool `json:"hasDecisions"`
	HasNextSteps bool `json:"hasNextSteps"`

	Model string `json:"model"`

	// ProcessingError is set when the summary was produced by a degraded path.
	ProcessingError string `json:"processingError,omitempty"`

	Topics []ProjectedTopic `json:"topics"`
}

// ProjectedTopic is a topic with its positions flattened into a stable list.
type ProjectedTopic struct {
	Name    string       `json:"name"`
	Summary string       `json:"summary"`
	Outcome string       `json:"outcome,omitempty"`
	Context []string     `json:"context,omitempty"`
	Parties []PartyEntry `json:"parties"`
}

// PartyEntry is one party's resolved position on a topic.
type PartyEntry struct {
	Party     string   `json:"party"`
	Color     string   `json:"color"`
	Statement string   `json:"statement"`
	Proposals []string `json:"proposals,omitempty"`
	Reasoning string   `json:"reasoning,omitempty"`
	Evidence  string   `json:"evidence,omitempty"`
}
