// Package mcp provides an MCP (Model Context Protocol) server adapter for digest.
// It lets AI assistants search and read the loaded meeting summaries.
package mcp

import "errors"

// ErrMissingCorpusService is returned when the corpus service is not provided.
var ErrMissingCorpusService = errors.New("mcp: corpus service is required")
