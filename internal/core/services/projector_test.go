package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verslag-digest/digest/internal/core/domain"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date: mustDate("2025-03-11"), want: "11 maart 2025"},
		{date: mustDate("2024-01-01"), want: "1 januari 2024"},
		{date: mustDate("2023-12-31"), want: "31 december 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.date))
		})
	}
}

func TestPreview(t *testing.T) {
	short := "Kort verslag."
	assert.Equal(t, short, Preview(short))

	exact := strings.Repeat("a", PreviewLength)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("é", PreviewLength+50)
	got := Preview(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, PreviewLength+3, utf8.RuneCountInString(got))
}

func TestProject(t *testing.T) {
	d := richDocument()
	d.Title = "Klimaatdebat"
	d.Date = mustDate("2025-03-11")
	d.Summary.ProcessingInfo = domain.ProcessingInfo{AIModel: "deepseek-chat", Error: "chunk 3 failed"}

	p := Project(&d)

	assert.Equal(t, "rich", p.ID)
	assert.Equal(t, "Klimaatdebat", p.Title)
	assert.Equal(t, "11 maart 2025", p.FormattedDate)
	assert.Equal(t, "Parliament met on Tuesday.", p.Preview)
	assert.Equal(t, len(d.Summary.Topics), p.TopicCount)
	assert.Equal(t, 1, p.DecisionCount)
	assert.Equal(t, 1, p.NextStepCount)
	assert.True(t, p.HasTopics)
	assert.True(t, p.HasDecisions)
	assert.True(t, p.HasNextSteps)
	assert.Equal(t, "deepseek-chat", p.Model)
	assert.Equal(t, "chunk 3 failed", p.ProcessingError)

	require.Len(t, p.Topics, 1)
	topic := p.Topics[0]
	assert.Equal(t, []string{"EU directive 2024/12"}, topic.Context)
	require.Len(t, topic.Parties, 2)
	assert.Equal(t, domain.PartyEntry{
		Party:     "GL-PvdA",
		Color:     domain.PartyColor("GL-PvdA"),
		Statement: "Wants faster phase-out",
		Proposals: []string{"Coal ban by 2028"},
		Reasoning: "Health costs",
		Evidence:  "RIVM study",
	}, topic.Parties[0])
	assert.Equal(t, domain.PartyEntry{
		Party:     "VVD",
		Color:     domain.PartyColor("VVD"),
		Statement: "Supports nuclear energy",
	}, topic.Parties[1])
}

func TestProject_EmptyDocument(t *testing.T) {
	p := Project(&domain.Document{ID: "empty"})

	assert.Zero(t, p.TopicCount)
	assert.False(t, p.HasTopics)
	assert.False(t, p.HasDecisions)
	assert.False(t, p.HasNextSteps)
	assert.Equal(t, domain.UnknownModel, p.Model)
	assert.NotNil(t, p.Topics)
	assert.Empty(t, p.Topics)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	d := richDocument()
	before := richDocument()

	p := Project(&d)
	p.Decisions[0] = "changed"
	p.Topics[0].Parties[0].Proposals[0] = "changed"

	assert.Equal(t, before, d)
}

func TestProjectAll_KeepsOrder(t *testing.T) {
	docs := scenarioDocs()
	projected := ProjectAll(docs)

	require.Len(t, projected, 2)
	assert.Equal(t, "feb", projected[0].ID)
	assert.Equal(t, "mar", projected[1].ID)
}
