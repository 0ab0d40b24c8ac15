package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/verslag-digest/digest/internal/core/domain"
)

// dateLayouts are tried in order when parsing a meeting date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// decodePayload turns a raw summary payload into a canonical Document.
//
// Both the camelCase document shape and the snake_case shape written by
// the summarizers are accepted. A payload without meeting info is rejected.
func decodePayload(data []byte, fd domain.FileDescriptor, now time.Time) (*domain.Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", fd.Filename, domain.ErrMalformedDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: payload is not an object: %w", fd.Filename, domain.ErrMalformedDocument)
	}

	meeting := first(root, "meetingInfo", "meeting_info")
	if !meeting.IsObject() {
		return nil, fmt.Errorf("%s: %w", fd.Filename, domain.ErrMissingMeetingInfo)
	}

	summary := domain.Summary{
		ExecutiveSummary:  first(root, "executiveSummary", "executive_summary").String(),
		Topics:            decodeTopics(first(root, "topics", "main_topics")),
		Decisions:         stringArray(first(root, "decisions", "key_decisions")),
		PoliticalDynamics: first(root, "politicalDynamics", "political_dynamics").String(),
		NextSteps:         stringArray(first(root, "nextSteps", "next_steps")),
		MeetingInfo: domain.MeetingInfo{
			Title:    first(meeting, "title", "vergadering_titel").String(),
			Date:     first(meeting, "date", "vergadering_datum").String(),
			ReportID: first(meeting, "verslagId", "verslag_id").String(),
			Status:   meeting.Get("status").String(),
		},
		ProcessingInfo: decodeProcessingInfo(first(root, "processingInfo", "processing_info")),
	}

	if summary.ProcessingInfo.AIModel == "" {
		summary.ProcessingInfo.AIModel = fd.SourceModel
	}

	id := summary.MeetingInfo.ReportID
	if id == "" {
		id = fd.ID
	}
	title := summary.MeetingInfo.Title
	if title == "" {
		title = "Meeting " + id
	}
	date, ok := parseDate(summary.MeetingInfo.Date)
	if !ok {
		date = now
	}

	return &domain.Document{
		ID:      id,
		Title:   title,
		Date:    date,
		Summary: summary,
	}, nil
}

func decodeProcessingInfo(r gjson.Result) domain.ProcessingInfo {
	if !r.IsObject() {
		return domain.ProcessingInfo{}
	}
	return domain.ProcessingInfo{
		AIModel:          first(r, "aiModel", "ai_model").String(),
		ProcessingDate:   first(r, "processingDate", "processing_date").String(),
		ChunksProcessed:  int(first(r, "chunksProcessed", "chunks_processed").Int()),
		TotalTopicsFound: int(first(r, "totalTopicsFound", "total_topics_found").Int()),
		Error:            r.Get("error").String(),
	}
}

func decodeTopics(r gjson.Result) []domain.Topic {
	if !r.IsArray() {
		return nil
	}
	items := r.Array()
	topics := make([]domain.Topic, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		topic := domain.Topic{
			Name:      first(item, "name", "topic", "title").String(),
			Summary:   item.Get("summary").String(),
			Outcome:   item.Get("outcome").String(),
			Context:   decodeContext(item.Get("context")),
			Positions: decodePositions(first(item, "positions", "party_positions")),
		}
		if topic.Name == "" {
			continue
		}
		topics = append(topics, topic)
	}
	return topics
}

func decodeContext(r gjson.Result) *domain.TopicContext {
	if !r.IsObject() {
		return nil
	}
	ctx := &domain.TopicContext{
		WhyDiscussed: first(r, "whyDiscussed", "why_discussed").String(),
		Background:   r.Get("background").String(),
		Stakes:       r.Get("stakes").String(),
		Trigger:      r.Get("trigger").String(),
	}
	if len(ctx.Fields()) == 0 {
		return nil
	}
	return ctx
}

// decodePositions accepts a party-keyed object, or the chunk-level list
// form [{"party": ..., "position": ...}] where repeated parties are joined.
func decodePositions(r gjson.Result) map[string]domain.Position {
	positions := make(map[string]domain.Position)
	switch {
	case r.IsObject():
		r.ForEach(func(key, value gjson.Result) bool {
			party := strings.TrimSpace(key.String())
			if p := decodePosition(value); party != "" && p != nil {
				positions[party] = p
			}
			return true
		})
	case r.IsArray():
		for _, item := range r.Array() {
			party := strings.TrimSpace(item.Get("party").String())
			statement := item.Get("position").String()
			if party == "" || statement == "" {
				continue
			}
			if prev, ok := positions[party]; ok {
				statement = domain.UnwrapPosition(prev).Statement + "; " + statement
			}
			positions[party] = domain.PlainPosition(statement)
		}
	}
	return positions
}

func decodePosition(r gjson.Result) domain.Position {
	switch {
	case r.Type == gjson.String:
		return domain.PlainPosition(r.String())
	case r.IsObject():
		return domain.StructuredPosition{
			Statement: first(r, "statement", "position").String(),
			Proposals: stringArray(r.Get("proposals")),
			Reasoning: r.Get("reasoning").String(),
			Evidence:  r.Get("evidence").String(),
		}
	default:
		return nil
	}
}

// first returns the first of paths that exists on r.
func first(r gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
