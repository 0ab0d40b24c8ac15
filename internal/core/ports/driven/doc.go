// Package driven declares what the corpus services need from the outside
// world: somewhere to read summaries from, somewhere to keep them, and
// somewhere to persist settings.
//
// Fetcher, DocumentStore and ConfigStore are always wired. Lister and
// Watcher are optional capabilities of a Fetcher's backing source; a
// source that cannot enumerate its entries only supports explicit file
// lists, and one that cannot watch is loaded once.
//
// Implementations live under internal/adapters/driven and may import
// this package and domain, never the reverse.
package driven
