package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapPosition(t *testing.T) {
	structured := StructuredPosition{
		Statement: "Meer geld voor sociale huur",
		Proposals: []string{"Huurbevriezing"},
		Reasoning: "Betaalbaarheid",
		Evidence:  "CBS-cijfers",
	}

	tests := []struct {
		name     string
		position Position
		expected StructuredPosition
	}{
		{
			name:     "plain position becomes statement only",
			position: PlainPosition("Tegen de motie"),
			expected: StructuredPosition{Statement: "Tegen de motie"},
		},
		{
			name:     "structured position is returned unchanged",
			position: structured,
			expected: structured,
		},
		{
			name:     "pointer to structured position is dereferenced",
			position: &structured,
			expected: structured,
		},
		{
			name:     "nil position yields zero value",
			position: nil,
			expected: StructuredPosition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnwrapPosition(tt.position))
		})
	}
}

func TestPosition_MarshalsBothVariants(t *testing.T) {
	topic := Topic{
		Name: "Climate Policy",
		Positions: map[string]Position{
			"VVD": PlainPosition("Voor"),
			"PVV": StructuredPosition{Statement: "Tegen", Reasoning: "Kosten"},
		},
	}

	data, err := json.Marshal(topic)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"VVD":"Voor"`)
	assert.Contains(t, string(data), `"statement":"Tegen"`)
	assert.Contains(t, string(data), `"reasoning":"Kosten"`)
}
