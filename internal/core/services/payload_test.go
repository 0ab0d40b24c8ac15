package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func descriptor(model, id string) domain.FileDescriptor {
	return domain.FileDescriptor{Filename: summaryFile(model, id), SourceModel: model, ID: id}
}

func TestDecodePayload_CamelCase(t *testing.T) {
	payload := `{
  "executiveSummary": "The committee debated climate targets.",
  "topics": [
    {
      "name": "Climate Policy",
      "summary": "Emission targets for 2030",
      "outcome": "Motion adopted",
      "context": {"whyDiscussed": "New EU rules", "stakes": "Fines"},
      "positions": {
        "VVD": "Supports the targets",
        "PVV": {"statement": "Opposes", "proposals": ["Delay"], "reasoning": "Costs", "evidence": "CPB report"}
      }
    }
  ],
  "decisions": ["Adopt motion 12"],
  "politicalDynamics": "Coalition split",
  "nextSteps": ["Vote on 18 March"],
  "meetingInfo": {"title": "Commissiedebat Klimaat", "date": "2025-03-11T10:00:00", "verslagId": "v-1", "status": "Gecorrigeerd"},
  "processingInfo": {"aiModel": "deepseek-chat", "chunksProcessed": 4, "totalTopicsFound": 9}
}`

	doc, err := decodePayload([]byte(payload), descriptor("deepseek", idA), fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "v-1", doc.ID)
	assert.Equal(t, "Commissiedebat Klimaat", doc.Title)
	assert.Equal(t, time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), doc.Date)
	assert.Equal(t, "The committee debated climate targets.", doc.Summary.ExecutiveSummary)
	assert.Equal(t, []string{"Adopt motion 12"}, doc.Summary.Decisions)
	assert.Equal(t, []string{"Vote on 18 March"}, doc.Summary.NextSteps)
	assert.Equal(t, "Coalition split", doc.Summary.PoliticalDynamics)
	assert.Equal(t, "Gecorrigeerd", doc.Summary.MeetingInfo.Status)
	assert.Equal(t, "deepseek-chat", doc.Summary.ProcessingInfo.AIModel)
	assert.Equal(t, 4, doc.Summary.ProcessingInfo.ChunksProcessed)
	assert.Equal(t, 9, doc.Summary.ProcessingInfo.TotalTopicsFound)

	require.Len(t, doc.Summary.Topics, 1)
	topic := doc.Summary.Topics[0]
	assert.Equal(t, "Climate Policy", topic.Name)
	assert.Equal(t, "Motion adopted", topic.Outcome)
	require.NotNil(t, topic.Context)
	assert.Equal(t, []string{"New EU rules", "Fines"}, topic.Context.Fields())
	assert.Equal(t, domain.PlainPosition("Supports the targets"), topic.Positions["VVD"])
	assert.Equal(t, domain.StructuredPosition{
		Statement: "Opposes",
		Proposals: []string{"Delay"},
		Reasoning: "Costs",
		Evidence:  "CPB report",
	}, topic.Positions["PVV"])
}

func TestDecodePayload_SnakeCase(t *testing.T) {
	payload := `{
  "executive_summary": "Housing debate.",
  "main_topics": [
    {"topic": "Housing", "summary": "Rent caps", "party_positions": {"SP": "Lower rents"}, "outcome": "Pending"},
    {"topic": "Zorg", "party_positions": [
      {"party": "CDA", "position": "More funding"},
      {"party": "CDA", "position": "Regional care"},
      {"party": "", "position": "ignored"}
    ]}
  ],
  "key_decisions": ["Letter requested"],
  "political_dynamics": "Opposition united",
  "meeting_info": {"vergadering_titel": "Woondebat", "vergadering_datum": "2025-02-01", "verslag_id": "v-2"},
  "processing_info": {"ai_model": "claude-3", "chunks_processed": 2, "error": "fallback summary"}
}`

	doc, err := decodePayload([]byte(payload), descriptor("claude", idB), fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "v-2", doc.ID)
	assert.Equal(t, "Woondebat", doc.Title)
	assert.Equal(t, mustDate("2025-02-01"), doc.Date)
	assert.Equal(t, []string{"Letter requested"}, doc.Summary.Decisions)
	assert.Equal(t, "claude-3", doc.Summary.ProcessingInfo.AIModel)
	assert.Equal(t, "fallback summary", doc.Summary.ProcessingInfo.Error)

	require.Len(t, doc.Summary.Topics, 2)
	assert.Equal(t, "Housing", doc.Summary.Topics[0].Name)
	assert.Equal(t, domain.PlainPosition("Lower rents"), doc.Summary.Topics[0].Positions["SP"])
	assert.Equal(t, domain.PlainPosition("More funding; Regional care"), doc.Summary.Topics[1].Positions["CDA"])
	assert.Len(t, doc.Summary.Topics[1].Positions, 1)
}

func TestDecodePayload_Fallbacks(t *testing.T) {
	payload := `{"executiveSummary": "x", "meetingInfo": {"date": "not a date"}}`

	doc, err := decodePayload([]byte(payload), descriptor("deepseek", idA), fixedNow)

	require.NoError(t, err)
	assert.Equal(t, idA, doc.ID)
	assert.Equal(t, "Meeting "+idA, doc.Title)
	assert.Equal(t, fixedNow, doc.Date)
	assert.Equal(t, "deepseek", doc.Summary.ProcessingInfo.AIModel)
	assert.Empty(t, doc.Summary.Topics)
}

func TestDecodePayload_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{name: "invalid json", payload: `{"meetingInfo":`, wantErr: domain.ErrMalformedDocument},
		{name: "array", payload: `[1, 2]`, wantErr: domain.ErrMalformedDocument},
		{name: "missing meeting info", payload: `{"executiveSummary": "x"}`, wantErr: domain.ErrMissingMeetingInfo},
		{name: "meeting info not object", payload: `{"meetingInfo": "v-1"}`, wantErr: domain.ErrMissingMeetingInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePayload([]byte(tt.payload), descriptor("deepseek", idA), fixedNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodePayload_SkipsUnnamedTopics(t *testing.T) {
	payload := `{"meetingInfo": {}, "topics": [{"summary": "no name"}, "bogus", {"name": "Named"}]}`

	doc, err := decodePayload([]byte(payload), descriptor("deepseek", idA), fixedNow)

	require.NoError(t, err)
	require.Len(t, doc.Summary.Topics, 1)
	assert.Equal(t, "Named", doc.Summary.Topics[0].Name)
	assert.Nil(t, doc.Summary.Topics[0].Context)
	assert.NotNil(t, doc.Summary.Topics[0].Positions)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw    string
		want   time.Time
		wantOK bool
	}{
		{raw: "2025-03-11T10:00:00Z", want: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "2025-03-11T10:00:00", want: time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "2025-03-11", want: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: " 2025-03-11 ", want: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), wantOK: true},
		{raw: "11 maart 2025"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseDate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
