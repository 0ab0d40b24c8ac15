package domain

import "time"

// Document is one summarised legislative meeting.
// Documents are never mutated after loading; they are only replaced wholesale.
type Document struct {
	// ID is the unique identifier, normally the meeting report id.
	ID string `json:"id"`

	// Title is the human-readable meeting title.
	Title string `json:"title"`

	// Date is when the meeting took place.
	Date time.Time `json:"date"`

	// Summary holds the summarised meeting content.
	Summary Summary `json:"summary"`
}

// Summary is the structured content of a meeting summary.
type Summary struct {
	ExecutiveSummary  string         `json:"executiveSummary"`
	Topics            []Topic        `json:"topics"`
	Decisions         []string       `json:"decisions"`
	PoliticalDynamics string         `json:"politicalDynamics"`
	NextSteps         []string       `json:"nextSteps"`
	MeetingInfo       MeetingInfo    `json:"meetingInfo"`
	ProcessingInfo    ProcessingInfo `json:"processingInfo"`
}

// MeetingInfo identifies the meeting a summary was produced from.
type MeetingInfo struct {
	// Title is the meeting title as recorded in the report.
	Title string `json:"title,omitempty"`

	// Date is the raw meeting date string as recorded in the report.
	Date string `json:"date,omitempty"`

	// ReportID is the id of the meeting report (verslag).
	ReportID string `json:"verslagId,omitempty"`

	// Status is the report status, e.g. "Gecorrigeerd".
	Status string `json:"status,omitempty"`
}

// ProcessingInfo describes how a summary was generated.
type ProcessingInfo struct {
	// AIModel is the model that produced the summary.
	AIModel string `json:"aiModel,omitempty"`

	// ProcessingDate is the raw timestamp of summary generation.
	ProcessingDate string `json:"processingDate,omitempty"`

	// ChunksProcessed is the number of transcript chunks summarised.
	ChunksProcessed int `json:"chunksProcessed,omitempty"`

	// TotalTopicsFound is the number of topics found before consolidation.
	TotalTopicsFound int `json:"totalTopicsFound,omitempty"`

	// Error is set when the summarizer fell back to a degraded summary.
	Error string `json:"error,omitempty"`
}

// Topic is one subject discussed during a meeting.
type Topic struct {
	// Name is the topic title.
	Name string `json:"name"`

	// Context optionally explains why the topic came up.
	Context *TopicContext `json:"context,omitempty"`

	// Summary describes what was discussed.
	Summary string `json:"summary"`

	// Positions maps party name to that party's position.
	// Iteration order is unspecified; use a projection for display.
	Positions map[string]Position `json:"positions"`

	// Outcome is the result or follow-up of the discussion.
	Outcome string `json:"outcome"`
}

// TopicContext holds optional background for a topic.
type TopicContext struct {
	WhyDiscussed string `json:"whyDiscussed,omitempty"`
	Background   string `json:"background,omitempty"`
	Stakes       string `json:"stakes,omitempty"`
	Trigger      string `json:"trigger,omitempty"`
}

// Fields returns the non-empty context fields in a fixed order.
func (c *TopicContext) Fields() []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, f := range []string{c.WhyDiscussed, c.Background, c.Stakes, c.Trigger} {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// HasParty reports whether any topic holds a position for one of the given parties.
func (d *Document) HasParty(parties map[string]bool) bool {
	for i := range d.Summary.Topics {
		for party := range d.Summary.Topics[i].Positions {
			if parties[party] {
				return true
			}
		}
	}
	return false
}

// HasTopic reports whether any topic name is in the given set.
func (d *Document) HasTopic(topics map[string]bool) bool {
	for i := range d.Summary.Topics {
		if topics[d.Summary.Topics[i].Name] {
			return true
		}
	}
	return false
}

// Model returns the summarising model, or UnknownModel when unset.
func (d *Document) Model() string {
	if d.Summary.ProcessingInfo.AIModel == "" {
		return UnknownModel
	}
	return d.Summary.ProcessingInfo.AIModel
}
