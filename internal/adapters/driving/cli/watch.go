package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/MareMare/pdf-visual-diff/internal/logger"
)

// debounceDelay coalesces the burst of filesystem events a single
// document save produces into one re-comparison.
const debounceDelay = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <pdf-a> <pdf-b>",
	Short: "Re-run the comparison whenever either file changes",
	Long: `Compares the two PDF files once, then watches both and re-runs the
comparison after every change. Useful while iterating on a report
template against a known-good baseline. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	addComparisonFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts := comparisonOptions(cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories rather than the files themselves:
	// most tools replace the file on save, which drops a direct watch.
	targets := make(map[string]bool, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", arg, err)
		}
		targets[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	runOnce := func() {
		comparer := newComparer(cmd.OutOrStdout())
		report, err := comparer.Compare(cmd.Context(), args[0], args[1], opts)
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		// The verdict sentinel only matters for one-shot runs.
		_ = printVerdict(cmd, report)
	}
	runOnce()

	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				logger.Debug("change on %s (%s)", ev.Name, ev.Op)
				timer.Reset(debounceDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-timer.C:
			cmd.Println()
			cmd.Println("Change detected, re-comparing...")
			runOnce()
		}
	}
}
