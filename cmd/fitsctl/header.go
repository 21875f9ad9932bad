package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fitskit/pkg/types"
)

var headerSorted bool

func init() {
	cmd := newHeaderCmd()
	cmd.Flags().BoolVar(&headerSorted, "sorted", false, "Order records by keyword instead of file order")
	rootCmd.AddCommand(cmd)
}

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <file>",
		Short: "Print every keyword record of the primary header",
		Long: `The header command prints the keyword records of the primary header in
the order they appear in the file. Blank padding cards are not shown.

Example:
  fitsctl header image.fits
  fitsctl header image.fits.gz --sorted
  fitsctl header image.fits --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args)
		},
	}
	return cmd
}

// recordJSON is the JSON form of a keyword record.
type recordJSON struct {
	Key     string `json:"key"`
	Kind    string `json:"kind,omitempty"`
	Value   any    `json:"value,omitempty"`
	Comment string `json:"comment,omitempty"`
}

func toJSON(r types.KeywordRecord) recordJSON {
	out := recordJSON{Key: r.Key(), Comment: r.Comment()}
	if v, ok := r.Value(); ok {
		out.Kind = v.Kind().String()
		out.Value = v.Interface()
	}
	return out
}

func runHeader(args []string) error {
	h, err := openHeader(args[0])
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	records := h.Records()
	if headerSorted {
		records = h.Sorted()
	}

	if jsonOut {
		out := make([]recordJSON, len(records))
		for i, r := range records {
			out[i] = toJSON(r)
		}
		return printJSON(out)
	}

	for _, r := range records {
		printInfo("%s\n", r)
	}
	printVerbose("%d records in %d blocks\n", h.Len(), h.Blocks())
	return nil
}
