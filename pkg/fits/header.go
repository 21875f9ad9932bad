package fits

import (
	"fmt"
	"slices"

	"github.com/joshuapare/fitskit/internal/format"
	"github.com/joshuapare/fitskit/pkg/types"
)

// ParseHeaderBlock decodes one 2880-byte header block into its records, in
// byte order, stopping at the END card. A block without END yields every
// record it holds. The block is only borrowed for the call.
func ParseHeaderBlock(block []byte) ([]types.KeywordRecord, error) {
	records, _, err := format.DecodeBlock(block)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Header is the ordered record list of one header, possibly spanning
// several blocks.
type Header struct {
	records []types.KeywordRecord
	blocks  int
	ended   bool
}

// NewHeader builds a header from records. The slice is copied.
func NewHeader(records []types.KeywordRecord) *Header {
	return &Header{records: slices.Clone(records)}
}

// Len returns the number of records.
func (h *Header) Len() int { return len(h.records) }

// Blocks returns the number of 2880-byte blocks the header was read from.
func (h *Header) Blocks() int { return h.blocks }

// Ended reports whether an END card closed the header.
func (h *Header) Ended() bool { return h.ended }

// At returns the i-th record.
func (h *Header) At(i int) types.KeywordRecord { return h.records[i] }

// Records returns a copy of the records in header order.
func (h *Header) Records() []types.KeywordRecord { return slices.Clone(h.records) }

// Lookup returns the last record with key. Later duplicates shadow
// earlier ones.
func (h *Header) Lookup(key string) (types.KeywordRecord, bool) {
	for i := len(h.records) - 1; i >= 0; i-- {
		if h.records[i].Key() == key {
			return h.records[i], true
		}
	}
	return types.KeywordRecord{}, false
}

// All returns every record with key, in header order.
func (h *Header) All(key string) []types.KeywordRecord {
	var out []types.KeywordRecord
	for _, r := range h.records {
		if r.Key() == key {
			out = append(out, r)
		}
	}
	return out
}

// Keys returns the distinct keys in order of first appearance.
func (h *Header) Keys() []string {
	seen := make(map[string]struct{}, len(h.records))
	keys := make([]string, 0, len(h.records))
	for _, r := range h.records {
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		keys = append(keys, r.Key())
	}
	return keys
}

// Sorted returns a copy of the records ordered by types.Compare. The order
// is for presentation; it does not preserve header semantics.
func (h *Header) Sorted() []types.KeywordRecord {
	out := slices.Clone(h.records)
	slices.SortStableFunc(out, types.Compare)
	return out
}

// Equal reports whether both headers hold equal records in the same order.
func (h *Header) Equal(o *Header) bool {
	return slices.EqualFunc(h.records, o.records, types.KeywordRecord.Equal)
}

// Fingerprint hashes the canonical card encoding of the records.
func (h *Header) Fingerprint() (uint64, error) { return Fingerprint(h.records) }

// Get returns the value of the last record with key as T.
func Get[T types.Scalar](h *Header, key string) (T, error) {
	r, ok := h.Lookup(key)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	v, err := types.RecordValue[T](r)
	if err != nil {
		return v, fmt.Errorf("fits: keyword %s: %w", key, err)
	}
	return v, nil
}
