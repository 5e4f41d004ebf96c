package models

import "errors"

// Error taxonomy for the dashboard pipeline.
//
// DataUnavailable and SchemaMismatch are terminal: they can only occur
// while loading the source datasets at startup, and the process should
// not serve anything without them. InvalidFilterInput and EmptyResult
// are per-request: the first means the filter controls need correcting,
// the second is a legitimate state where valid filters match no rows.
var (
	ErrDataUnavailable    = errors.New("source data unavailable")
	ErrSchemaMismatch     = errors.New("source data schema mismatch")
	ErrInvalidFilterInput = errors.New("invalid filter input")
	ErrEmptyResult        = errors.New("no rows match the selected filters")
)
