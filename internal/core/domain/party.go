package domain

// DefaultPartyColor is used for parties missing from the colour table.
const DefaultPartyColor = "#6B7280"

// partyColors is the fixed party colour table for Tweede Kamer factions.
var partyColors = map[string]string{
	"VVD":        "#1E4B8F",
	"PVV":        "#0C2D57",
	"CDA":        "#2E8B57",
	"D66":        "#00A651",
	"GL-PvdA":    "#C8102E",
	"GroenLinks": "#39A935",
	"PvdA":       "#E3001B",
	"SP":         "#EE2E24",
	"NSC":        "#14375F",
	"BBB":        "#92C83E",
	"CU":         "#00A7EB",
	"SGP":        "#F26B21",
	"PvdD":       "#006B39",
	"FvD":        "#841818",
	"DENK":       "#00B7B2",
	"JA21":       "#242B57",
	"Volt":       "#502379",
	"50PLUS":     "#92278F",
}

// PartyColor returns the display colour for a party.
func PartyColor(party string) string {
	if c, ok := partyColors[party]; ok {
		return c
	}
	return DefaultPartyColor
}
