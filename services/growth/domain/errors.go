package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for the growth domain. Use errors.Is() to check these.
var (
	// ErrInvalidRecord indicates the submitted measurement failed validation.
	ErrInvalidRecord = errors.New("invalid growth record")

	// ErrRecordNotFound indicates no record has the requested id. Reserved for
	// lookups by id; deleting an absent id is a no-op and never returns it.
	ErrRecordNotFound = errors.New("growth record not found")

	// ErrPersistence indicates the record set could not be written through.
	ErrPersistence = errors.New("growth records could not be saved")

	// ErrConfirmationRequired indicates a delete was attempted without confirmation.
	ErrConfirmationRequired = errors.New("delete requires confirmation")
)

// ValidationError carries per-field messages. Missing lists the fields left
// empty. It unwraps to ErrInvalidRecord.
type ValidationError struct {
	Fields  map[string]string
	Missing []string
}

// HasMissing reports whether any required field was left empty.
func (e *ValidationError) HasMissing() bool {
	return len(e.Missing) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrInvalidRecord.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRecord }
