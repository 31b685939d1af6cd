package domain

import "errors"

// Domain errors represent comparison-level failures.
// These are distinct from infrastructure errors.
var (
	// ErrDifferencesFound signals the overall verdict: at least one page
	// pair differed. It is not a failure of the tool itself; the CLI maps
	// it to a non-zero exit code for pipeline use.
	ErrDifferencesFound = errors.New("differences found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required collaborator was not wired in.
	ErrNotConfigured = errors.New("not configured")
)
