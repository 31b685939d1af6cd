package driven

import "image"

// PixelDiff is the output of one pixel-level comparison.
type PixelDiff struct {
	// Mask is the difference image: transparent where pixels match,
	// coloured where they exceed the threshold. Same dimensions as
	// the compared images.
	Mask image.Image

	// Mismatch is the number of pixels exceeding the threshold.
	Mismatch int
}

// PixelComparator computes a per-pixel difference between two images of
// identical dimensions. Implementations must be deterministic for
// identical inputs.
type PixelComparator interface {
	// Compare diffs a against b with the given tolerance in [0, 1].
	// The images must already share dimensions and carry an alpha
	// channel; callers normalise before invoking.
	Compare(a, b image.Image, threshold float64) (*PixelDiff, error)
}
