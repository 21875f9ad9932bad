package fits

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/fitskit/internal/format"
	"github.com/joshuapare/fitskit/pkg/types"
)

// EncodeHeader renders records as fixed-format cards followed by END,
// padded with blank cards to a whole number of blocks. Comments too long
// for their card are truncated in the output only. Reading the result back
// trims spaces from the edges of comments and the end of string values.
func EncodeHeader(records []types.KeywordRecord) ([]byte, error) {
	return format.EncodeHeader(records)
}

// WriteHeader encodes records and writes them to w.
func WriteHeader(w io.Writer, records []types.KeywordRecord) error {
	out, err := format.EncodeHeader(records)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("fits: write header: %w", err)
	}
	return nil
}

// Encode renders the header as WriteHeader would.
func (h *Header) Encode() ([]byte, error) { return format.EncodeHeader(h.records) }

// Fingerprint returns an xxhash digest of the canonical cards for records.
// Records that decode equal produce equal fingerprints regardless of the
// spacing they were read with.
func Fingerprint(records []types.KeywordRecord) (uint64, error) {
	d := xxhash.New()
	buf := make([]byte, 0, format.CardSize)
	for i, r := range records {
		var err error
		buf, err = format.AppendCard(buf[:0], r)
		if err != nil {
			return 0, fmt.Errorf("fits: record %d: %w", i, err)
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64(), nil
}
