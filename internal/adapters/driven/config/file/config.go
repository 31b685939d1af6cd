// Package file loads comparison defaults from a TOML file.
//
// The file is optional; a missing file yields the built-in defaults.
// Flags override file values, which override built-in defaults.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
)

// Config mirrors the TOML file layout. Zero fields fall back to the
// built-in defaults.
type Config struct {
	// DPI is the default raster resolution in pixels per inch.
	DPI float64 `toml:"dpi"`

	// Threshold is the default comparator sensitivity in [0, 1].
	Threshold float64 `toml:"threshold"`

	// OutputDir is the default diff image directory.
	OutputDir string `toml:"output_dir"`
}

// DefaultPath returns the default config location,
// ~/.pdfdiff/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pdfdiff", "config.toml"), nil
}

// Load reads the config file and merges it over the built-in defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return domain.Options{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.Options{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.DPI != 0 {
		opts.DPI = cfg.DPI
	}
	if cfg.Threshold != 0 {
		opts.Threshold = cfg.Threshold
	}
	if cfg.OutputDir != "" {
		opts.OutputDir = cfg.OutputDir
	}

	if err := opts.Validate(); err != nil {
		return domain.Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}
