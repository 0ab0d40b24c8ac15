package tui

import "errors"

var (
	// ErrMissingCorpusService means Ports carried no corpus to browse.
	ErrMissingCorpusService = errors.New("tui: corpus service is required")

	// ErrInvalidPorts wraps any other Ports validation failure.
	ErrInvalidPorts = errors.New("tui: invalid ports configuration")
)
