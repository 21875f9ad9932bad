package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fitskit/cmd/fitsctl/logger"
	"github.com/joshuapare/fitskit/internal/format"
	"github.com/joshuapare/fitskit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that the primary header parses and can be rewritten",
		Long: `The validate command reads the primary header and checks that:
  - every card decodes, and the header is closed by END
  - SIMPLE is the first keyword
  - every record can be encoded back into a fixed-format card

Repeated keywords are reported as warnings. The command exits non-zero
when any check fails.

Example:
  fitsctl validate image.fits
  fitsctl validate image.fits --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

// validateResult is the report printed by validate.
type validateResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func runValidate(args []string) error {
	path := args[0]
	res := validateResult{File: path}

	h, err := openHeader(path)
	if err != nil {
		res.Errors = append(res.Errors, describeReadError(err))
	} else {
		records := h.Records()
		if len(records) == 0 || records[0].Key() != "SIMPLE" {
			res.Errors = append(res.Errors, "first keyword is not SIMPLE")
		}
		for i, r := range records {
			if _, err := format.EncodeCard(r); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("record %d (%s): %v", i, r.Key(), err))
			}
		}
		for _, key := range h.Keys() {
			if n := len(h.All(key)); n > 1 && !isCommentary(key) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("keyword %s appears %d times", key, n))
			}
		}
	}
	res.Valid = len(res.Errors) == 0
	logger.Info("validated", "path", path, "valid", res.Valid, "errors", len(res.Errors))

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		for _, e := range res.Errors {
			printInfo("  ✗ %s\n", e)
		}
		for _, w := range res.Warnings {
			printInfo("  ! %s\n", w)
		}
		if res.Valid {
			printInfo("  ✓ %s: header valid\n", path)
		}
	}
	if !res.Valid {
		return fmt.Errorf("%s: header invalid (%d errors)", path, len(res.Errors))
	}
	return nil
}

// describeReadError adds the card location of a parse failure.
func describeReadError(err error) string {
	var pe *types.ParseError
	if errors.As(err, &pe) {
		return fmt.Sprintf("card %d column %d: %v", pe.Offset/format.CardSize, pe.Column+1, err)
	}
	return err.Error()
}

// isCommentary reports keywords that are expected to repeat.
func isCommentary(key string) bool {
	switch key {
	case "COMMENT", "HISTORY":
		return true
	}
	return false
}
