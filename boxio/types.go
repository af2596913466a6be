// Package boxio defines sentinel errors for the boxio subpackage of
// github.com/katalvlaran/crystalgrid.
package boxio

import "errors"

// Sentinel errors for problem parsing.
var (
	// ErrBadHeader indicates a missing or non-numeric "L C N" header.
	ErrBadHeader = errors.New("boxio: malformed problem header, want 'L C N'")
	// ErrBadRecord indicates a malformed crystal record.
	ErrBadRecord = errors.New("boxio: malformed crystal record, want 'x y v d c e b'")
	// ErrRecordCount indicates fewer crystal records than the header announced.
	ErrRecordCount = errors.New("boxio: input ended before all crystal records were read")
)
