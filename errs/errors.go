// Package errs defines the sentinel errors returned by the netbits packages.
//
// All errors arising from untrusted wire input are exported here so callers
// can classify failures with errors.Is and treat the offending packet as
// corrupt without string matching.
package errs

import "errors"

var (
	// ErrInvalidPrefixByte indicates a sequence prefix byte outside the
	// recognized encoding (the trailing byte count must be in [1,8]).
	ErrInvalidPrefixByte = errors.New("invalid sequence prefix byte")

	// ErrShortSequenceBytes indicates fewer trailing sequence bytes were
	// available than the prefix byte announced.
	ErrShortSequenceBytes = errors.New("short sequence bytes")

	// ErrSequenceGapTooLarge indicates a configured maximum sequence gap
	// that cannot be disambiguated even with 8 trailing bytes.
	ErrSequenceGapTooLarge = errors.New("sequence gap too large")

	// ErrInvalidCompressionType indicates an unknown payload compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
