package domain

import "fmt"

// Defaults for comparison options.
const (
	// DefaultDPI is the raster resolution in pixels per inch.
	DefaultDPI = 100.0

	// DefaultThreshold is the per-pixel normalised colour-distance
	// tolerance below which pixels are considered equal.
	DefaultThreshold = 0.1

	// DefaultOutputDir is where diff images are written when no
	// output directory is given.
	DefaultOutputDir = "diff_results"
)

// Options configures one comparison run. The zero value is not usable;
// start from DefaultOptions and override per call.
type Options struct {
	// DPI is the resolution both documents are rasterised at.
	DPI float64

	// Threshold is the pixel comparator sensitivity in [0, 1].
	// 0 flags any difference, 1 flags none.
	Threshold float64

	// OutputDir receives the diff images. Created if absent.
	OutputDir string
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		DPI:       DefaultDPI,
		Threshold: DefaultThreshold,
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if o.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %g", ErrInvalidInput, o.DPI)
	}
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold must be in [0, 1], got %g", ErrInvalidInput, o.Threshold)
	}
	if o.OutputDir == "" {
		return fmt.Errorf("%w: output directory must not be empty", ErrInvalidInput)
	}
	return nil
}
