// Package domain defines the core business entities for digest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One meeting summary with its topics, positions and decisions
//   - Position: Tagged union of plain and structured party positions
//   - TopicFilter, PartyFilter, SearchFilter: The three filter facets
//   - FileDescriptor: A discovered, loadable source document
//   - ProjectedDocument: Display-ready derivation of a Document
//   - Stats: Corpus-wide statistics
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
