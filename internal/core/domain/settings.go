package domain

import "time"

const unknownDescription = "Unknown"

// SourceKind selects the transport used to fetch summary documents.
type SourceKind string

// Available source kinds.
const (
	// SourceKindFilesystem reads documents from a local directory.
	SourceKindFilesystem SourceKind = "filesystem"

	// SourceKindHTTP fetches documents relative to a base URL.
	SourceKindHTTP SourceKind = "http"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindFilesystem, SourceKindHTTP:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindFilesystem:
		return "Filesystem (local directory)"
	case SourceKindHTTP:
		return "HTTP (remote base URL)"
	default:
		return unknownDescription
	}
}

// DuplicatePolicy decides which document survives when two share an id.
type DuplicatePolicy string

// Available duplicate policies.
const (
	// DuplicatePolicyFirst keeps the earliest document in merge order.
	DuplicatePolicyFirst DuplicatePolicy = "first"

	// DuplicatePolicyLast lets a later document replace an earlier one.
	DuplicatePolicyLast DuplicatePolicy = "last"
)

// IsValid returns true if the policy is recognised.
func (p DuplicatePolicy) IsValid() bool {
	return p == DuplicatePolicyFirst || p == DuplicatePolicyLast
}

// String returns the string representation.
func (p DuplicatePolicy) String() string {
	return string(p)
}

// SourceSettings configures document discovery and loading.
type SourceSettings struct {
	// Kind is the transport.
	Kind SourceKind

	// Location is a directory for filesystem sources or a base URL for HTTP.
	Location string

	// Manifest is the name of the manifest resource.
	Manifest string

	// FileList is the name of the plain filename-list resource.
	FileList string

	// Patterns are static filenames or glob patterns used when no
	// manifest or file list is available.
	Patterns []string

	// Concurrency bounds the number of in-flight document fetches.
	// Zero issues every fetch at once.
	Concurrency int

	// RequestsPerSecond limits HTTP fetch rate. Zero disables limiting.
	RequestsPerSecond float64

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// Retries is how often a transient HTTP failure (5xx, 429) is retried.
	Retries int

	// Watch enables reloading when the document directory changes.
	Watch bool
}

// FilterSettings configures facet behaviour.
type FilterSettings struct {
	// PreserveSelection carries selection state across facet rebuilds by name.
	PreserveSelection bool

	// Duplicates is the id collision policy for merges.
	Duplicates DuplicatePolicy
}

// SearchSettings configures text search behaviour.
type SearchSettings struct {
	// Debounce is the quiescence window for search-as-you-type.
	Debounce time.Duration

	// Defaults is the initial search filter (query is ignored).
	Defaults SearchFilter
}

// AppSettings holds all application settings.
type AppSettings struct {
	Source SourceSettings
	Filter FilterSettings
	Search SearchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Source: SourceSettings{
			Kind:              SourceKindFilesystem,
			Location:          "summaries",
			Manifest:          "manifest.json",
			FileList:          "files.json",
			Patterns:          []string{"*_summary_*.json"},
			Concurrency:       0,
			RequestsPerSecond: 0,
			Timeout:           10 * time.Second,
			Retries:           3,
			Watch:             true,
		},
		Filter: FilterSettings{
			PreserveSelection: true,
			Duplicates:        DuplicatePolicyFirst,
		},
		Search: SearchSettings{
			Debounce: 300 * time.Millisecond,
			Defaults: DefaultSearchFilter(),
		},
	}
}

// AllSourceKinds returns all available source kinds.
func AllSourceKinds() []SourceKind {
	return []SourceKind{SourceKindFilesystem, SourceKindHTTP}
}
