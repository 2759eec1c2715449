package algoplatform

import "errors"

// Sentinel errors returned by specifier and target-file parsing.
var (
	// ErrInvalidSpecifier is returned when a platform specifier cannot be
	// parsed. Well-formed specifiers naming an unrecognized OS or
	// architecture do not produce this error; they resolve to an empty
	// symbol set instead.
	ErrInvalidSpecifier = errors.New("algoplatform: invalid platform specifier")

	// ErrInvalidTargetFile is returned when a target descriptor file cannot
	// be decoded.
	ErrInvalidTargetFile = errors.New("algoplatform: invalid target file")
)
