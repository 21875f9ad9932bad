package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/fitskit/cmd/fitsctl/logger"
	"github.com/joshuapare/fitskit/internal/format"
	"github.com/joshuapare/fitskit/pkg/fits"
)

var cardsBlank bool

func init() {
	cmd := newCardsCmd()
	cmd.Flags().BoolVar(&cardsBlank, "blank", false, "Include blank padding cards")
	rootCmd.AddCommand(cmd)
}

func newCardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards <file>",
		Short: "Dump the raw 80-byte cards of the primary header",
		Long: `The cards command prints the header cards exactly as stored, one per
line, prefixed by their byte offset in the file. Control bytes are shown
as '.' and bytes above ASCII are shown as Latin-1. Cards are printed up to and including END, so a
malformed card is shown even when the header does not parse.

Example:
  fitsctl cards image.fits
  fitsctl cards image.fits --blank`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCards(args)
		},
	}
	return cmd
}

// cardJSON is the JSON form of a raw card.
type cardJSON struct {
	Offset int64  `json:"offset"`
	Text   string `json:"text"`
}

func runCards(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if !noDecompress {
		rc, err := fits.Uncompressed(f)
		if err != nil {
			return err
		}
		defer rc.Close()
		r = rc
	}

	var out []cardJSON
	err = scanCards(r, readOptions().MaxBlocks, func(offset int64, card []byte) {
		if !cardsBlank && format.IsBlank(card) {
			return
		}
		text := renderCard(card)
		if jsonOut {
			out = append(out, cardJSON{Offset: offset, Text: text})
			return
		}
		printInfo("%8d  %s\n", offset, text)
	})
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(out)
	}
	return nil
}

// scanCards calls fn for every card of r up to and including END.
func scanCards(r io.Reader, maxBlocks int, fn func(offset int64, card []byte)) error {
	if maxBlocks <= 0 {
		maxBlocks = fits.DefaultMaxBlocks
	}
	block := make([]byte, format.BlockSize)
	for n := 0; n < maxBlocks; n++ {
		if _, err := io.ReadFull(r, block); err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				logger.Warn("no END card", "blocks", n)
				return nil
			}
			return fmt.Errorf("header block %d: %w", n, err)
		}
		cards, err := format.SplitBlock(block)
		if err != nil {
			return err
		}
		for i, card := range cards {
			fn(int64(n*format.BlockSize+i*format.CardSize), card)
			if format.IsEnd(card) {
				return nil
			}
		}
	}
	return fits.ErrTooManyBlocks
}

// renderCard decodes card as Latin-1 and masks control characters. Valid
// cards are pure ASCII, so any non-ASCII glyph in the output marks a bad byte.
func renderCard(card []byte) string {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(card)
	if err != nil {
		text = card
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			return '.'
		}
		return r
	}, strings.TrimRight(string(text), " "))
}
