package domain

// Position is a party's stance on a topic.
//
// It is a closed union of two variants: PlainPosition, a bare statement,
// and StructuredPosition, a statement with optional proposals, reasoning
// and evidence. Consumers should resolve the variant with UnwrapPosition
// rather than asserting on the concrete type.
type Position interface {
	isPosition()
}

// PlainPosition is a position given as a single statement.
type PlainPosition string

func (PlainPosition) isPosition() {}

// StructuredPosition is a position with supporting detail.
type StructuredPosition struct {
	Statement string   `json:"statement"`
	Proposals []string `json:"proposals,omitempty"`
	Reasoning string   `json:"reasoning,omitempty"`
	Evidence  string   `json:"evidence,omitempty"`
}

func (StructuredPosition) isPosition() {}

// UnwrapPosition normalises either variant into a StructuredPosition.
// A plain position becomes a statement with no proposals, reasoning or evidence.
// A nil position yields the zero value.
func UnwrapPosition(p Position) StructuredPosition {
	switch v := p.(type) {
	case PlainPosition:
		return StructuredPosition{Statement: string(v)}
	case StructuredPosition:
		return v
	case *StructuredPosition:
		if v == nil {
			return StructuredPosition{}
		}
		return *v
	default:
		return StructuredPosition{}
	}
}
