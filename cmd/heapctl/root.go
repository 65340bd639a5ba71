package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/printer"
	"github.com/joshuapare/heapkit/internal/logger"
	"github.com/joshuapare/heapkit/pkg/heap"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	showOffsets bool
	modeName    string
	capacity    int
	backingName string
	logDir      string
)

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Drive and inspect the heapkit allocator",
	Long: `heapctl exercises the heapkit allocator: it replays the classic
allocation demo, runs allocation scripts, and reports block layouts and
statistics for any placement strategy (first-fit, next-fit, best-fit,
segregated).

Set HEAP_LOG_ALLOC=1 to log allocator decisions to stderr.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initLogging() },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logger.Close() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&showOffsets, "offsets", false, "Print region offsets instead of addresses")
	rootCmd.PersistentFlags().
		StringVarP(&modeName, "mode", "m", "first-fit", "Placement strategy (first-fit, next-fit, best-fit, segregated)")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 1<<20, "Region reservation in bytes")
	rootCmd.PersistentFlags().StringVar(&backingName, "backing", "arena", "Region backing (arena, mmap)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON debug logs to this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// initLogging enables stderr debug logging when HEAP_LOG_ALLOC is set, and
// file logging when --log-dir is given.
func initLogging() error {
	opts := logger.Options{Level: slog.LevelDebug}
	switch {
	case logDir != "":
		opts.Enabled = true
		opts.LogDir = logDir
	case os.Getenv(logger.EnvLogAlloc) != "":
		opts.Enabled = true
		opts.Output = os.Stderr
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	return nil
}

// openHeap builds a session from the global flags.
func openHeap() (*heap.Heap, error) {
	mode, err := heap.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	backing, err := heap.ParseBacking(backingName)
	if err != nil {
		return nil, err
	}

	printVerbose("Reserving %d bytes (%s) in %s mode\n", capacity, backing, mode)
	return heap.New(&heap.Options{
		Mode:     mode,
		Capacity: capacity,
		Backing:  backing,
		Logger:   logger.L,
	})
}

// newPrinter returns a text printer on stdout honoring --offsets.
func newPrinter(h printer.Heap) *printer.Printer {
	opts := printer.DefaultOptions()
	opts.ShowAddress = !showOffsets
	return printer.New(h, os.Stdout, opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
