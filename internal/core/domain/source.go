package domain

import "time"

// UnknownModel is the source model of files whose name does not parse,
// and the stats bucket for documents without a model.
const UnknownModel = "unknown"

// FileDescriptor identifies one loadable summary document.
type FileDescriptor struct {
	// Filename is the resource name relative to the source base.
	Filename string `json:"filename"`

	// SourceModel is the model prefix parsed from the filename.
	SourceModel string `json:"sourceModel"`

	// ID is the report id parsed from the filename.
	ID string `json:"id"`
}

// Manifest lists the available summary files with generation metadata.
type Manifest struct {
	Files     []string  `json:"files"`
	Count     int       `json:"count"`
	Generated time.Time `json:"generated"`
}
