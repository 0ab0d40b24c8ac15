// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The filter engine, search matcher, projector and stats aggregator are
// pure functions over domain types. CorpusService is the only stateful
// service; it owns the document store and filter state and recomputes
// every derived view after each mutation.
package services
