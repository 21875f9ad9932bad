package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fitskit/pkg/fits"
	"github.com/joshuapare/fitskit/pkg/types"
)

var (
	getAll      bool
	getShowType bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getAll, "all", false, "Print every occurrence of a repeated keyword")
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show the value kind")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <keyword>",
		Short: "Get the value of a keyword",
		Long: `The get command prints the value of a keyword. When the keyword appears
more than once the last occurrence wins, unless --all is given.

Example:
  fitsctl get image.fits NAXIS
  fitsctl get image.fits HISTORY --all
  fitsctl get image.fits OBJECT --type`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, key := args[0], args[1]
	if err := types.ValidateKey(key); err != nil {
		return err
	}

	h, err := openHeader(path)
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	var records []types.KeywordRecord
	if getAll {
		records = h.All(key)
	} else if r, ok := h.Lookup(key); ok {
		records = []types.KeywordRecord{r}
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %s", fits.ErrKeyNotFound, key)
	}

	if jsonOut {
		out := make([]recordJSON, len(records))
		for i, r := range records {
			out[i] = toJSON(r)
		}
		if !getAll {
			return printJSON(out[0])
		}
		return printJSON(out)
	}

	for _, r := range records {
		printInfo("%s\n", formatValue(r))
	}
	return nil
}

// formatValue renders the value of r, or its comment text when r carries
// no value.
func formatValue(r types.KeywordRecord) string {
	v, ok := r.Value()
	if !ok {
		return r.Comment()
	}
	if getShowType {
		return fmt.Sprintf("%s (%s)", v, v.Kind())
	}
	return v.String()
}
