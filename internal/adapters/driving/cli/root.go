// Package cli implements the pdfdiff command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MareMare/pdf-visual-diff/internal/adapters/driven/artifacts/disk"
	configfile "github.com/MareMare/pdf-visual-diff/internal/adapters/driven/config/file"
	"github.com/MareMare/pdf-visual-diff/internal/adapters/driven/pixel"
	"github.com/MareMare/pdf-visual-diff/internal/adapters/driven/raster/fitz"
	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
	"github.com/MareMare/pdf-visual-diff/internal/core/ports/driving"
	"github.com/MareMare/pdf-visual-diff/internal/core/services"
	"github.com/MareMare/pdf-visual-diff/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string

	// defaults holds the effective option defaults after the config
	// file is merged. Flags override these per command.
	defaults = domain.DefaultOptions()
)

// newComparer builds the production comparer. Tests replace it to
// inject mock collaborators.
var newComparer = func(progress io.Writer) driving.Comparer {
	return services.NewCompareService(
		fitz.NewRasterizer(),
		pixel.NewComparator(),
		disk.Factory(),
		progress,
	)
}

var rootCmd = &cobra.Command{
	Use:   "pdfdiff",
	Short: "Pixel-level visual comparison of PDF files",
	Long: `pdfdiff rasterises two PDF files page by page and compares them
pixel by pixel. Pages that differ produce highlighted diff images in the
output directory, and the exit code reports the overall verdict for use
in automated pipelines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return loadDefaults()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.pdfdiff/config.toml)")
}

// loadDefaults merges the optional config file over the built-in
// defaults. Only an explicitly requested config file may fail the run.
func loadDefaults() error {
	path := configFlag
	if path == "" {
		var err error
		if path, err = configfile.DefaultPath(); err != nil {
			logger.Warn("cannot resolve home directory: %v", err)
			return nil
		}
	}

	opts, err := configfile.Load(path)
	if err != nil {
		return err
	}
	defaults = opts
	logger.Debug("defaults: dpi=%g threshold=%g output=%s", opts.DPI, opts.Threshold, opts.OutputDir)
	return nil
}

// Execute runs the CLI. It returns domain.ErrDifferencesFound when the
// comparison verdict is "differences found", and any other error when
// the run itself failed.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
