package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report basic metadata about the primary header",
		Long: `The info command reads the primary header and reports its size, record
count, the mandatory SIMPLE/BITPIX/NAXIS keywords and a fingerprint of the
canonical card encoding. Two headers with the same fingerprint hold the same
records, however their cards were spaced.

Example:
  fitsctl info image.fits
  fitsctl info image.fits --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// headerInfo is the summary printed by info.
type headerInfo struct {
	File        string            `json:"file"`
	Size        int64             `json:"size"`
	Blocks      int               `json:"blocks"`
	Records     int               `json:"records"`
	Keywords    int               `json:"keywords"`
	Ended       bool              `json:"ended"`
	Mandatory   map[string]string `json:"mandatory"`
	Fingerprint string            `json:"fingerprint,omitempty"`
}

var mandatoryKeys = []string{"SIMPLE", "BITPIX", "NAXIS"}

func runInfo(args []string) error {
	path := args[0]
	h, err := openHeader(path)
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	info := headerInfo{
		File:      path,
		Blocks:    h.Blocks(),
		Records:   h.Len(),
		Keywords:  len(h.Keys()),
		Ended:     h.Ended(),
		Mandatory: make(map[string]string, len(mandatoryKeys)),
	}
	if stat, err := os.Stat(path); err == nil {
		info.Size = stat.Size()
	}
	for _, key := range mandatoryKeys {
		if r, ok := h.Lookup(key); ok {
			if v, ok := r.Value(); ok {
				info.Mandatory[key] = v.String()
			}
		}
	}
	// a header with unencodable records has no canonical form
	if fp, err := h.Fingerprint(); err == nil {
		info.Fingerprint = fmt.Sprintf("%016x", fp)
	} else {
		printVerbose("No fingerprint: %v\n", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nHeader Information:\n")
	printInfo("  File: %s\n", info.File)
	printInfo("  Size: %d bytes\n", info.Size)
	printInfo("  Blocks: %d\n", info.Blocks)
	printInfo("  Records: %d (%d distinct keywords)\n", info.Records, info.Keywords)
	printInfo("  END present: %t\n", info.Ended)
	for _, key := range mandatoryKeys {
		if v, ok := info.Mandatory[key]; ok {
			printInfo("  %s: %s\n", key, v)
		} else {
			printInfo("  %s: (missing)\n", key)
		}
	}
	if info.Fingerprint != "" {
		printInfo("  Fingerprint: %s\n", info.Fingerprint)
	}
	return nil
}
