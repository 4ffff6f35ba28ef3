package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-readable classification of a query failure.
type ErrorKind string

const (
	// KindStoreUnavailable means the trip store could not be opened or
	// queried. Fatal to the current query only.
	KindStoreUnavailable ErrorKind = "store_unavailable"
	// KindCorruptRecord marks a single unparseable store row. Corrupt
	// rows are skipped and counted, never fatal to a scan.
	KindCorruptRecord ErrorKind = "corrupt_record"
	// KindInvalidDescriptor means the query descriptor is malformed or
	// self-contradictory. Rejected before any scan begins.
	KindInvalidDescriptor ErrorKind = "invalid_descriptor"
	// KindResultTooLarge means the query's distinct-key space exceeds
	// the configured budget. The caller should narrow its filters.
	KindResultTooLarge ErrorKind = "result_too_large"
	// KindTimeout means the query exceeded its wall-clock budget and
	// was aborted. No partial results are returned.
	KindTimeout ErrorKind = "timeout"
	// KindCacheUnavailable marks a result-cache fault. Queries degrade
	// to uncached execution instead of failing.
	KindCacheUnavailable ErrorKind = "cache_unavailable"
)

// QueryError carries the error taxonomy across component boundaries.
type QueryError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError builds a QueryError with a formatted message.
func NewQueryError(kind ErrorKind, format string, args ...interface{}) *QueryError {
	return &QueryError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapQueryError attaches a cause to a classified error.
func WrapQueryError(kind ErrorKind, err error, format string, args ...interface{}) *QueryError {
	return &QueryError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the classification from an error chain, defaulting
// to store_unavailable for unclassified failures.
func KindOf(err error) ErrorKind {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return KindStoreUnavailable
}
