package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrRecordNotFound indicates the requested id is absent from the catalog
	ErrRecordNotFound = errors.New("record not found")

	// ErrSourceOffline indicates the catalog source is unreachable or
	// answered with a non-success status
	ErrSourceOffline = errors.New("catalog source is unreachable")

	// ErrMalformedResponse indicates the source answered with a payload
	// missing required fields
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrStorageCorrupt indicates a persisted value could not be decoded
	ErrStorageCorrupt = errors.New("persisted value is corrupt")

	// ErrEmptyCatalog indicates an operation needed at least one record
	ErrEmptyCatalog = errors.New("catalog is empty")
)
