// Package disk persists diff artifacts as PNG files in an output
// directory.
package disk

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store writes diff images into one output directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if absent and returns a store
// writing into it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Factory adapts NewStore to the driven.ArtifactStoreFactory shape.
func Factory() driven.ArtifactStoreFactory {
	return func(dir string) (driven.ArtifactStore, error) {
		return NewStore(dir)
	}
}

// Save writes the image as diff_page_<page>.png and returns its path.
func (s *Store) Save(page int, img image.Image) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("diff_page_%d.png", page))
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
