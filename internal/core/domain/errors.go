package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// The loader also wraps every per-file failure with it.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source kind or policy.
	ErrUnsupportedType = errors.New("unsupported type")

	// Document Errors.

	// ErrMalformedDocument indicates a payload that is not a summary document.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingMeetingInfo indicates a payload without meeting info.
	ErrMissingMeetingInfo = errors.New("missing meeting info")

	// ErrNoDocuments indicates discovery and loading produced no usable documents.
	// Callers substitute the fallback document when they see it.
	ErrNoDocuments = errors.New("no documents available")

	// Source Errors.

	// ErrResourceUnavailable indicates a source resource could not be fetched.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrListingUnsupported indicates the source cannot enumerate its resources.
	ErrListingUnsupported = errors.New("listing unsupported")
)
