package fits

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fitskit/pkg/types"
)

// cards lays out 80-byte cards and pads to a whole number of blocks.
func cards(lines ...string) []byte {
	var b []byte
	for _, l := range lines {
		b = append(b, []byte(l+strings.Repeat(" ", 80-len(l)))...)
	}
	if rem := len(b) % 2880; rem != 0 || len(b) == 0 {
		b = append(b, bytes.Repeat([]byte{' '}, 2880-rem)...)
	}
	return b
}

func mustValue(t *testing.T, key, comment string, v types.Value) types.KeywordRecord {
	t.Helper()
	r, err := types.NewValueRecord(key, comment, v)
	require.NoError(t, err)
	return r
}

func sampleRecords(t *testing.T) []types.KeywordRecord {
	t.Helper()
	history, err := types.NewRecord("HISTORY", "reduced with fitskit")
	require.NoError(t, err)
	return []types.KeywordRecord{
		mustValue(t, "SIMPLE", "conforms to FITS standard", types.ValueOf(true)),
		mustValue(t, "BITPIX", "", types.ValueOf(int32(16))),
		mustValue(t, "NAXIS", "", types.ValueOf(int32(2))),
		mustValue(t, "EXPTIME", "seconds", types.ValueOf(float32(30))),
		mustValue(t, "OBJECT", "", types.ValueOf("M 31")),
		history,
	}
}

func TestParseHeaderBlock_WrongLength(t *testing.T) {
	for _, n := range []int{0, 2879, 2881} {
		_, err := ParseHeaderBlock(make([]byte, n))
		var be *types.InvalidHeaderBlockError
		require.ErrorAs(t, err, &be, "length %d", n)
		assert.Equal(t, n, be.Length)
	}
}

func TestParseHeaderBlock_SingleRecord(t *testing.T) {
	records, err := ParseHeaderBlock(cards("KEY1    = 1 / comment", "END"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "KEY1", r.Key())
	assert.Equal(t, "comment", r.Comment())
	v, err := types.RecordValue[int32](r)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestParseHeaderBlock_Duplicates(t *testing.T) {
	records, err := ParseHeaderBlock(cards("A       = 1", "A       = 2", "END"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Key())
	assert.Equal(t, "A", records[1].Key())
}

func TestParseHeaderBlock_NoEnd(t *testing.T) {
	lines := make([]string, 36)
	for i := range lines {
		lines[i] = "K       = 'v'"
	}
	records, err := ParseHeaderBlock(cards(lines...))
	require.NoError(t, err)
	assert.Len(t, records, 36)
}

func TestParseHeaderBlock_Idempotent(t *testing.T) {
	block := cards("SIMPLE  =                    T", "OBJECT  = 'M31'", "END")
	orig := bytes.Clone(block)

	first, err := ParseHeaderBlock(block)
	require.NoError(t, err)
	second, err := ParseHeaderBlock(block)
	require.NoError(t, err)

	assert.Equal(t, orig, block, "input block was modified")
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "record %d", i)
	}
}

func TestParseHeaderBlock_ParseError(t *testing.T) {
	_, err := ParseHeaderBlock(cards("GOOD    = 1", "BAD     = 'unterminated", "END"))
	var pe *types.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 80, pe.Offset)
}

func TestReadHeader_MultiBlock(t *testing.T) {
	records := sampleRecords(t)
	for i := 0; i < 40; i++ {
		records = append(records, mustValue(t, "FILL", "", types.ValueOf(int32(i))))
	}
	data, err := EncodeHeader(records)
	require.NoError(t, err)

	h, err := ParseHeader(data, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Blocks())
	assert.True(t, h.Ended())
	assert.True(t, h.Equal(NewHeader(records)))
}

func TestReadHeader_StopsAtEnd(t *testing.T) {
	data, err := EncodeHeader(sampleRecords(t))
	require.NoError(t, err)
	// data unit bytes after the header are not read
	data = append(data, bytes.Repeat([]byte{0xff}, 2880)...)

	h, err := ParseHeader(data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Blocks())
	assert.Equal(t, len(sampleRecords(t)), h.Len())
}

func TestReadHeader_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"empty", nil, 0},
		{"short block", make([]byte, 100), 100},
		{"short second block", append(cards("A       = 1"), make([]byte, 80)...), 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.data, nil)
			var be *types.InvalidHeaderBlockError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.want, be.Length)
		})
	}
}

func TestReadHeader_MissingEnd(t *testing.T) {
	data := cards("A       = 1", "B       = 2")

	_, err := ParseHeader(data, nil)
	require.ErrorIs(t, err, ErrMissingEnd)

	h, err := ParseHeader(data, &ReadOptions{AllowMissingEnd: true})
	require.NoError(t, err)
	assert.False(t, h.Ended())
	assert.Equal(t, 2, h.Len())
}

func TestReadHeader_MaxBlocks(t *testing.T) {
	data := append(cards("A       = 1"), cards("B       = 2")...)
	data = append(data, cards("END")...)

	_, err := ParseHeader(data, &ReadOptions{MaxBlocks: 2})
	require.ErrorIs(t, err, ErrTooManyBlocks)

	h, err := ParseHeader(data, &ReadOptions{MaxBlocks: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, h.Blocks())
}

func TestReadHeader_BlockErrorHasIndex(t *testing.T) {
	data := append(cards("A       = 1"), cards("B       = (1, ")...)
	_, err := ParseHeader(data, nil)
	var pe *types.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "header block 1")
}

func TestReadHeader_Compressed(t *testing.T) {
	records := sampleRecords(t)
	raw, err := EncodeHeader(records)
	require.NoError(t, err)

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err = gw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for name, data := range map[string][]byte{"gzip": gz.Bytes(), "zstd": zs.Bytes()} {
		t.Run(name, func(t *testing.T) {
			h, err := ReadHeader(bytes.NewReader(data), nil)
			require.NoError(t, err)
			assert.True(t, h.Equal(NewHeader(records)))

			// without detection the compressed bytes are parsed as cards
			_, err = ReadHeader(bytes.NewReader(data), &ReadOptions{})
			assert.Error(t, err)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestReadHeader_ReaderError(t *testing.T) {
	_, err := ReadHeader(failingReader{}, &ReadOptions{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestOpen(t *testing.T) {
	records := sampleRecords(t)
	path := filepath.Join(t.TempDir(), "image.fits")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteHeader(f, records))
	require.NoError(t, f.Close())

	h, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, len(records), h.Len())

	naxis, err := Get[int32](h, "NAXIS")
	require.NoError(t, err)
	assert.Equal(t, int32(2), naxis)

	_, err = Open(filepath.Join(t.TempDir(), "missing.fits"), nil)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHeader_Lookup(t *testing.T) {
	h := NewHeader([]types.KeywordRecord{
		mustValue(t, "A", "first", types.ValueOf(int32(1))),
		mustValue(t, "B", "", types.ValueOf("x")),
		mustValue(t, "A", "second", types.ValueOf(int32(2))),
	})

	r, ok := h.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "second", r.Comment())

	_, ok = h.Lookup("C")
	assert.False(t, ok)

	assert.Len(t, h.All("A"), 2)
	assert.Equal(t, []string{"A", "B"}, h.Keys())

	v, err := Get[int32](h, "A")
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)

	_, err = Get[int32](h, "C")
	require.ErrorIs(t, err, ErrKeyNotFound)

	_, err = Get[int32](h, "B")
	require.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestHeader_SortedLeavesOrder(t *testing.T) {
	h := NewHeader([]types.KeywordRecord{
		mustValue(t, "ZETA", "", types.ValueOf(int32(1))),
		mustValue(t, "ALPHA", "", types.ValueOf(int32(2))),
	})
	sorted := h.Sorted()
	assert.Equal(t, "ALPHA", sorted[0].Key())
	assert.Equal(t, "ZETA", h.At(0).Key())
}

func TestHeader_RecordsIsCopy(t *testing.T) {
	h := NewHeader(sampleRecords(t))
	rs := h.Records()
	rs[0] = types.KeywordRecord{}
	assert.Equal(t, "SIMPLE", h.At(0).Key())
}

func TestFingerprint(t *testing.T) {
	a, err := ParseHeaderBlock(cards("NAXIS   =                    2 / axes", "END"))
	require.NoError(t, err)
	// same record, free-format spacing
	b, err := ParseHeaderBlock(cards("NAXIS   = 2   /   axes", "END"))
	require.NoError(t, err)
	c, err := ParseHeaderBlock(cards("NAXIS   = 3 / axes", "END"))
	require.NoError(t, err)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := NewHeader(b).Fingerprint()
	require.NoError(t, err)
	fc, err := Fingerprint(c)
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)

	_, err = Fingerprint([]types.KeywordRecord{{}})
	require.ErrorIs(t, err, types.ErrUnencodable)
}

func TestWriteHeader_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHeader(&buf, []types.KeywordRecord{
		mustValue(t, "LONG", "", types.ValueOf(strings.Repeat("x", 80))),
	})
	require.ErrorIs(t, err, types.ErrUnencodable)
	assert.Zero(t, buf.Len())
}

func TestHeader_EncodeRoundTrip(t *testing.T) {
	h := NewHeader(sampleRecords(t))
	out, err := h.Encode()
	require.NoError(t, err)
	back, err := ParseHeader(out, nil)
	require.NoError(t, err)
	assert.True(t, h.Equal(back))
}

func TestUncompressed_PassThrough(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("S"), cards("SIMPLE  = T", "END")} {
		rc, err := Uncompressed(bytes.NewReader(data))
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, len(data), len(got))
	}
}

func TestUncompressed_CorruptGzip(t *testing.T) {
	_, err := Uncompressed(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	assert.Error(t, err)
}
