package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery marks a query rejected before any fetch was issued:
	// non-positive limit, unknown filter value, or an inverted time window.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSourceUnavailable marks a transient upstream condition — quota
	// exhaustion, rate limiting, 5xx, or a network failure. The caller owns
	// retry policy; the engine never retries these inside an aggregation.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// MalformedRecordError reports a raw record that failed normalization.
// Fatal is set when the missing field is the record's unique identifier;
// the page containing it then fails as a whole. Non-fatal records are
// skipped and aggregation continues.
type MalformedRecordError struct {
	Field string
	Index int
	Fatal bool
}

func (e *MalformedRecordError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("record %d: missing identifier field %q", e.Index, e.Field)
	}
	return fmt.Sprintf("record %d: missing field %q", e.Index, e.Field)
}
