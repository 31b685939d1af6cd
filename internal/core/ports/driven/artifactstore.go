package driven

import "image"

// ArtifactStore persists diff images produced during a comparison run.
// One store instance owns one output location for the duration of a run.
type ArtifactStore interface {
	// Save persists the image as the diff artifact for the given
	// 1-based page number and returns the stored path.
	Save(page int, img image.Image) (string, error)
}

// ArtifactStoreFactory opens the store for one run's output location,
// creating it if absent. The engine calls it once per run, before any
// artifact is written.
type ArtifactStoreFactory func(dir string) (ArtifactStore, error)
