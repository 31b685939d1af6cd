package driving

import (
	"context"
	"image"

	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
)

// Comparer runs visual comparisons between two documents.
type Comparer interface {
	// Compare rasterises both documents and diffs them page by page.
	// The returned report covers every page position of the longer
	// document. An error means the run could not complete (unreadable
	// document, IO failure); pixel differences are reported through
	// the report, never as an error.
	Compare(ctx context.Context, pathA, pathB string, opts domain.Options) (*domain.Report, error)

	// ComparePages diffs two already-rasterised page sequences.
	// It exists so callers can compare synthetic or pre-rendered
	// sequences without a rasterizer.
	ComparePages(seqA, seqB []image.Image, opts domain.Options) (*domain.Report, error)
}
