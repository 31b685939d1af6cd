// Package fitz implements the rasterizer port using go-fitz (MuPDF).
package fitz

import (
	"context"
	"fmt"
	"image"

	gofitz "github.com/gen2brain/go-fitz"

	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driven"
)

// Ensure Rasterizer implements the interface.
var _ driven.Rasterizer = (*Rasterizer)(nil)

// Rasterizer renders PDF pages to images through MuPDF.
type Rasterizer struct{}

// NewRasterizer creates a new MuPDF-backed rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Render rasterises every page of the document at the given DPI.
// A zero-page document yields an empty, non-nil slice and no error.
func (r *Rasterizer) Render(ctx context.Context, path string, dpi float64) ([]image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := gofitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer doc.Close()

	pages := make([]image.Image, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, dpi)
		if err != nil {
			return nil, fmt.Errorf("render page %d of %s: %w", n+1, path, err)
		}
		pages = append(pages, img)
	}

	return pages, nil
}
