package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSearchFilter(t *testing.T) {
	f := DefaultSearchFilter()

	assert.Empty(t, f.Query)
	assert.True(t, f.IncludeTopics)
	assert.True(t, f.IncludePositions)
	assert.True(t, f.IncludeDecisions)
	assert.True(t, f.IncludeContext)
	assert.True(t, f.IncludeReasoning)
}

func TestSearchPatch_Apply(t *testing.T) {
	off := false
	base := DefaultSearchFilter()
	base.Query = "klimaat"

	t.Run("empty patch keeps everything", func(t *testing.T) {
		patch := SearchPatch{}
		assert.True(t, patch.IsEmpty())
		assert.Equal(t, base, patch.Apply(base))
	})

	t.Run("only specified fields change", func(t *testing.T) {
		patch := SearchPatch{IncludeTopics: &off}
		got := patch.Apply(base)

		assert.False(t, got.IncludeTopics)
		assert.Equal(t, "klimaat", got.Query)
		assert.True(t, got.IncludePositions)
		assert.True(t, got.IncludeReasoning)
	})

	t.Run("query patch replaces query", func(t *testing.T) {
		got := QueryPatch("wonen").Apply(base)
		assert.Equal(t, "wonen", got.Query)
		assert.True(t, got.IncludeTopics)
	})
}

func TestSelectedNames(t *testing.T) {
	topics := []TopicFilter{
		{Name: "Climate Policy", Selected: true},
		{Name: "Housing Regulation", Selected: false},
	}
	parties := []PartyFilter{
		{Name: "VVD", Selected: true},
		{Name: "PVV", Selected: true},
	}

	assert.Equal(t, map[string]bool{"Climate Policy": true}, SelectedTopics(topics))
	assert.Equal(t, map[string]bool{"VVD": true, "PVV": true}, SelectedParties(parties))
	assert.Empty(t, SelectedTopics(nil))
}

func TestPartyColor(t *testing.T) {
	assert.Equal(t, "#1E4B8F", PartyColor("VVD"))
	assert.Equal(t, DefaultPartyColor, PartyColor("Onbekende Partij"))
	assert.Equal(t, DefaultPartyColor, PartyColor(""))
}

func TestTopicContext_Fields(t *testing.T) {
	var nilCtx *TopicContext
	assert.Nil(t, nilCtx.Fields())

	ctx := &TopicContext{WhyDiscussed: "Nieuwe wet", Stakes: "Huurders"}
	assert.Equal(t, []string{"Nieuwe wet", "Huurders"}, ctx.Fields())
}

func TestDocument_Model(t *testing.T) {
	doc := Document{}
	assert.Equal(t, UnknownModel, doc.Model())

	doc.Summary.ProcessingInfo.AIModel = "deepseek-chat"
	assert.Equal(t, "deepseek-chat", doc.Model())
}
