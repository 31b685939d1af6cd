// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Rasterizer: Converts a document into an ordered page-image sequence
//   - PixelComparator: Produces a difference mask for two equal-sized images
//   - ArtifactStore: Persists diff images named by page number
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
