package services

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driven"
	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driving"
)

// Ensure CompareService implements the interface.
var _ driving.Comparer = (*CompareService)(nil)

// CompareService is the page diff engine.
type CompareService struct {
	rasterizer driven.Rasterizer
	comparator driven.PixelComparator
	stores     driven.ArtifactStoreFactory
	progress   io.Writer
}

// NewCompareService creates a new compare service. The progress writer
// receives one human-readable line per page event; nil discards them.
func NewCompareService(
	rasterizer driven.Rasterizer,
	comparator driven.PixelComparator,
	stores driven.ArtifactStoreFactory,
	progress io.Writer,
) *CompareService {
	if progress == nil {
		progress = io.Discard
	}
	return &CompareService{
		rasterizer: rasterizer,
		comparator: comparator,
		stores:     stores,
		progress:   progress,
	}
}

// Compare rasterises both documents and diffs them page by page.
func (s *CompareService) Compare(ctx context.Context, pathA, pathB string, opts domain.Options) (*domain.Report, error) {
	if s.rasterizer == nil {
		return nil, fmt.Errorf("rasterizer: %w", domain.ErrNotConfigured)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seqA, err := s.rasterizer.Render(ctx, pathA, opts.DPI)
	if err != nil {
		return nil, fmt.Errorf("rasterise %s: %w", pathA, err)
	}
	seqB, err := s.rasterizer.Render(ctx, pathB, opts.DPI)
	if err != nil {
		return nil, fmt.Errorf("rasterise %s: %w", pathB, err)
	}

	return s.ComparePages(seqA, seqB, opts)
}

// ComparePages diffs two already-rasterised page sequences.
//
// Every page position of the longer sequence yields exactly one result.
// A page present on only one side is saved unmodified as that page's
// artifact; pages present on both sides are normalised to NRGBA,
// resized to the first side's dimensions when they differ, and handed
// to the pixel comparator. Differing regions are highlighted by
// compositing the comparator's mask over the first page.
func (s *CompareService) ComparePages(seqA, seqB []image.Image, opts domain.Options) (*domain.Report, error) {
	if s.comparator == nil {
		return nil, fmt.Errorf("pixel comparator: %w", domain.ErrNotConfigured)
	}
	if s.stores == nil {
		return nil, fmt.Errorf("artifact store: %w", domain.ErrNotConfigured)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Acquire the output location before any write.
	store, err := s.stores(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("open output directory %s: %w", opts.OutputDir, err)
	}

	report := &domain.Report{PagesA: len(seqA), PagesB: len(seqB)}
	if len(seqA) != len(seqB) {
		fmt.Fprintf(s.progress, "Warning: Page count mismatch! (%d vs %d)\n", len(seqA), len(seqB))
	}

	for i := 0; i < max(len(seqA), len(seqB)); i++ {
		page := i + 1

		if i >= len(seqA) || i >= len(seqB) {
			existing := seqA
			if i >= len(seqA) {
				existing = seqB
			}
			path, err := store.Save(page, existing[i])
			if err != nil {
				return nil, fmt.Errorf("save artifact for page %d: %w", page, err)
			}
			fmt.Fprintf(s.progress, "Page %d: Missing in one of the PDFs.\n", page)
			report.Results = append(report.Results, domain.PageResult{
				Page:     page,
				Status:   domain.StatusMissing,
				Artifact: path,
			})
			continue
		}

		result, err := s.comparePair(store, page, seqA[i], seqB[i], opts.Threshold)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// comparePair diffs the two pages at one position, both present.
func (s *CompareService) comparePair(store driven.ArtifactStore, page int, a, b image.Image, threshold float64) (domain.PageResult, error) {
	result := domain.PageResult{Page: page, Status: domain.StatusMatch}

	// The comparator requires a uniform 4-channel layout.
	imgA := imaging.Clone(a)
	imgB := imaging.Clone(b)

	sizeA := imgA.Bounds().Size()
	sizeB := imgB.Bounds().Size()
	if !sizeA.Eq(sizeB) {
		fmt.Fprintf(s.progress, "Page %d: Size mismatch %dx%d vs %dx%d. Resizing second page.\n",
			page, sizeA.X, sizeA.Y, sizeB.X, sizeB.Y)
		imgB = imaging.Resize(imgB, sizeA.X, sizeA.Y, imaging.Lanczos)
		result.Resized = true
		result.SizeA = sizeA
		result.SizeB = sizeB
	}

	diff, err := s.comparator.Compare(imgA, imgB, threshold)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("compare page %d: %w", page, err)
	}

	if diff.Mismatch > 0 {
		highlighted := imaging.Overlay(imgA, diff.Mask, image.Point{}, 1.0)
		path, err := store.Save(page, highlighted)
		if err != nil {
			return domain.PageResult{}, fmt.Errorf("save artifact for page %d: %w", page, err)
		}
		fmt.Fprintf(s.progress, "Page %d: Found %d pixels of difference.\n", page, diff.Mismatch)
		result.Status = domain.StatusMismatch
		result.Mismatch = diff.Mismatch
		result.Artifact = path
	}

	return result, nil
}
