// Package tui provides an interactive terminal user interface for digest.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/verslag-digest/digest/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Corpus is the document corpus and its filters.
	Corpus driving.CorpusService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(corpus driving.CorpusService, settings driving.SettingsService) *Ports {
	return &Ports{
		Corpus:   corpus,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
