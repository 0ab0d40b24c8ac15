package mcp

import (
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Corpus provides the loaded meeting summaries.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
