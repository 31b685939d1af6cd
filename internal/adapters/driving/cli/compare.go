package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MareMare/pdf-visual-diff/internal/core/domain"
	"github.com/MareMare/pdf-visual-diff/internal/logger"
)

var (
	outputFlag    string
	dpiFlag       float64
	thresholdFlag float64
	jsonFlag      bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <pdf-a> <pdf-b>",
	Short: "Compare two PDF files and report differences",
	Long: `Rasterises both PDF files and compares them page by page.
Pages are paired strictly by position; a page present in only one file
counts as a difference and is saved as-is. Differing pages are saved as
diff_page_<n>.png with the changed regions highlighted.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	addComparisonFlags(compareCmd)
	compareCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the per-page report as JSON")
	rootCmd.AddCommand(compareCmd)
}

// addComparisonFlags registers the flags shared by compare and watch.
func addComparisonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, "output", "o", domain.DefaultOutputDir, "output directory for diff images")
	cmd.Flags().Float64Var(&dpiFlag, "dpi", domain.DefaultDPI, "raster resolution in pixels per inch")
	cmd.Flags().Float64Var(&thresholdFlag, "threshold", domain.DefaultThreshold, "per-pixel tolerance in [0, 1]")
}

// comparisonOptions layers flag values over the config-file defaults.
// A flag only wins when it was set explicitly.
func comparisonOptions(cmd *cobra.Command) domain.Options {
	opts := defaults
	if cmd.Flags().Changed("output") {
		opts.OutputDir = outputFlag
	}
	if cmd.Flags().Changed("dpi") {
		opts.DPI = dpiFlag
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = thresholdFlag
	}
	return opts
}

func runCompare(cmd *cobra.Command, args []string) error {
	opts := comparisonOptions(cmd)
	logger.Debug("comparing %s against %s (dpi=%g threshold=%g)", args[0], args[1], opts.DPI, opts.Threshold)

	comparer := newComparer(cmd.OutOrStdout())
	report, err := comparer.Compare(cmd.Context(), args[0], args[1], opts)
	if err != nil {
		return err
	}

	if jsonFlag {
		if err := outputReportJSON(cmd, report); err != nil {
			return err
		}
	}

	return printVerdict(cmd, report)
}

// printVerdict emits the single summary line and maps the verdict to
// the sentinel error the entry point turns into exit code 1.
func printVerdict(cmd *cobra.Command, report *domain.Report) error {
	if report.Differs() {
		cmd.Println("Differences found.")
		return domain.ErrDifferencesFound
	}
	cmd.Println("No significant differences.")
	return nil
}

func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
