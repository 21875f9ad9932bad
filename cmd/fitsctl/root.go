package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fitskit/cmd/fitsctl/logger"
	"github.com/joshuapare/fitskit/pkg/fits"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	debug   bool
	logFile string

	// Header reading flags
	maxBlocks       int
	allowMissingEnd bool
	noDecompress    bool
)

var releaseLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "fitsctl",
	Short: "Inspect FITS file headers",
	Long: `fitsctl reads the primary header of FITS files and reports its keyword
records. Files compressed with gzip or zstd are detected and read directly.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		release, err := logger.Init(logger.Options{
			Enabled: debug || logFile != "",
			Level:   slog.LevelDebug,
			File:    logFile,
		})
		if err != nil {
			return fmt.Errorf("failed to init logging: %w", err)
		}
		releaseLog = release
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return releaseLog()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON diagnostics to a file")

	rootCmd.PersistentFlags().
		IntVar(&maxBlocks, "max-blocks", fits.DefaultMaxBlocks, "Header blocks to read before giving up on END")
	rootCmd.PersistentFlags().
		BoolVar(&allowMissingEnd, "allow-missing-end", false, "Accept a header that ends without an END card")
	rootCmd.PersistentFlags().
		BoolVar(&noDecompress, "no-decompress", false, "Do not detect gzip or zstd input")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// readOptions builds fits.ReadOptions from the global flags.
func readOptions() *fits.ReadOptions {
	return &fits.ReadOptions{
		MaxBlocks:       maxBlocks,
		AllowMissingEnd: allowMissingEnd,
		Decompress:      !noDecompress,
	}
}

// openHeader reads the header of path with the global reading flags.
func openHeader(path string) (*fits.Header, error) {
	printVerbose("Opening file: %s\n", path)
	h, err := fits.Open(path, readOptions())
	if err != nil {
		logger.Error("read header failed", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("read header", "path", path, "blocks", h.Blocks(), "records", h.Len(), "ended", h.Ended())
	return h, nil
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
