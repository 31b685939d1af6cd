package driven

import (
	"context"
	"image"
)

// Rasterizer converts a document into an ordered sequence of page images.
// Implementations wrap a rendering backend (MuPDF, PDFium, ...).
type Rasterizer interface {
	// Render rasterises every page of the document at the given
	// resolution, in document order. A zero-page document yields an
	// empty slice and no error. An unreadable or corrupt document
	// yields an error.
	Render(ctx context.Context, path string, dpi float64) ([]image.Image, error)
}
