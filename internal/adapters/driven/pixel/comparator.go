// Package pixel implements the pixel comparator port on top of the
// pixelmatch algorithm.
package pixel

import (
	"fmt"
	"image"

	"github.com/orisano/pixelmatch"

	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driven"
)

// Ensure Comparator implements the interface.
var _ driven.PixelComparator = (*Comparator)(nil)

// Comparator diffs two equal-sized images with pixelmatch, producing a
// mask that is transparent where the pixels match.
type Comparator struct{}

// NewComparator creates a new pixelmatch-backed comparator.
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare returns the difference mask and the count of pixels whose
// normalised colour distance exceeds the threshold.
func (c *Comparator) Compare(a, b image.Image, threshold float64) (*driven.PixelDiff, error) {
	var mask image.Image
	count, err := pixelmatch.MatchPixel(a, b,
		pixelmatch.Threshold(threshold),
		pixelmatch.EnableDiffMask,
		pixelmatch.WriteTo(&mask),
	)
	if err != nil {
		return nil, fmt.Errorf("pixelmatch: %w", err)
	}
	return &driven.PixelDiff{Mask: mask, Mismatch: count}, nil
}
