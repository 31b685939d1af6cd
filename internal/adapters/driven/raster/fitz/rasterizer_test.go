package fitz

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBlankPDF writes a minimal valid PDF with the given number of
// empty US-letter pages and returns its path.
func writeBlankPDF(t *testing.T, pages int) string {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 3+i)
	}

	writeObj("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<</Type/Pages/Kids[%s]/Count %d>>\nendobj\n", kids, pages))
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf(
			"%d 0 obj\n<</Type/Page/MediaBox[0 0 612 792]/Parent 2 0 R/Resources<<>>>>\nendobj\n",
			3+i))
	}

	xrefOffset := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(offsets)+1)
	// Each entry is exactly 20 bytes.
	fmt.Fprintf(&buf, "%010d %05d f \r\n", 0, 65535)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n \r\n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF", len(offsets)+1, xrefOffset)

	path := filepath.Join(t.TempDir(), "blank.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRenderPageCountAndOrder(t *testing.T) {
	rasterizer := NewRasterizer()
	path := writeBlankPDF(t, 2)

	pages, err := rasterizer.Render(context.Background(), path, 72)
	require.NoError(t, err)

	require.Len(t, pages, 2)
	for _, page := range pages {
		// 612x792pt media box rendered at 72 DPI.
		assert.Equal(t, 612, page.Bounds().Dx())
		assert.Equal(t, 792, page.Bounds().Dy())
	}
}

func TestRenderHonoursDPI(t *testing.T) {
	rasterizer := NewRasterizer()
	path := writeBlankPDF(t, 1)

	pages, err := rasterizer.Render(context.Background(), path, 144)
	require.NoError(t, err)

	require.Len(t, pages, 1)
	assert.Equal(t, 1224, pages[0].Bounds().Dx())
	assert.Equal(t, 1584, pages[0].Bounds().Dy())
}

func TestRenderMissingFile(t *testing.T) {
	rasterizer := NewRasterizer()

	_, err := rasterizer.Render(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), 100)
	assert.Error(t, err)
}

func TestRenderCancelledContext(t *testing.T) {
	rasterizer := NewRasterizer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rasterizer.Render(ctx, writeBlankPDF(t, 1), 100)
	assert.ErrorIs(t, err, context.Canceled)
}
