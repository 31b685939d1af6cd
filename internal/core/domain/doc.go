// Package domain defines the core entities of the PDF visual diff.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageResult: The outcome of comparing one page pair
//   - Report: The accumulated per-page results and overall verdict
//   - Options: Resolution, threshold and output-directory configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
