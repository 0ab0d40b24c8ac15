// Package driving is the surface the CLI, TUI and MCP server call into:
// CorpusService for browsing and filtering summaries, SettingsService for
// configuration. internal/core/services provides the implementations.
package driving
