// Package memory provides an in-memory artifact store for tests.
package memory

import (
	"fmt"
	"image"
	"sync"

	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ArtifactStore = (*Store)(nil)

// Store is an in-memory implementation of driven.ArtifactStore.
// Saved images are retrievable by page number for assertions.
type Store struct {
	mu     sync.RWMutex
	dir    string
	images map[int]image.Image
}

// NewStore creates a new in-memory artifact store. The dir is only
// used to form the returned paths; nothing touches the filesystem.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		images: make(map[int]image.Image),
	}
}

// Factory returns an ArtifactStoreFactory yielding this store for any
// directory, so one instance can be inspected after an engine run.
func (s *Store) Factory() driven.ArtifactStoreFactory {
	return func(string) (driven.ArtifactStore, error) {
		return s, nil
	}
}

// Save records the image under the page number.
func (s *Store) Save(page int, img image.Image) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[page] = img
	return fmt.Sprintf("%s/diff_page_%d.png", s.dir, page), nil
}

// Get returns the saved image for a page, or nil if none was saved.
func (s *Store) Get(page int) image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images[page]
}

// Len returns the number of saved artifacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
