package fits

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/fitskit/internal/format"
	"github.com/joshuapare/fitskit/internal/mmfile"
	"github.com/joshuapare/fitskit/pkg/types"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ReadHeader reads consecutive 2880-byte blocks from r until the block that
// holds END. A nil opts selects DefaultReadOptions. Errors from a block are
// wrapped with its index; see types.ParseError for card locations.
func ReadHeader(r io.Reader, opts *ReadOptions) (*Header, error) {
	if opts == nil {
		opts = DefaultReadOptions()
	}
	if opts.Decompress {
		rc, err := Uncompressed(r)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		r = rc
	}

	h := &Header{}
	block := make([]byte, format.BlockSize)
	for n := 0; ; n++ {
		if n >= opts.maxBlocks() {
			return nil, fmt.Errorf("%w: %d blocks", ErrTooManyBlocks, n)
		}
		got, err := io.ReadFull(r, block)
		switch {
		case errors.Is(err, io.EOF) && n > 0:
			if opts.AllowMissingEnd {
				return h, nil
			}
			return nil, fmt.Errorf("%w after %d blocks", ErrMissingEnd, n)
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("fits: header block %d: %w", n, &types.InvalidHeaderBlockError{Length: got})
		case err != nil:
			return nil, fmt.Errorf("fits: reading header block %d: %w", n, err)
		}

		records, ended, err := format.DecodeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("fits: header block %d: %w", n, err)
		}
		h.records = append(h.records, records...)
		h.blocks++
		if ended {
			h.ended = true
			return h, nil
		}
	}
}

// ParseHeader reads a header from data already in memory.
func ParseHeader(data []byte, opts *ReadOptions) (*Header, error) {
	return ReadHeader(bytes.NewReader(data), opts)
}

// Open reads the header at the start of the file at path. The file is
// mapped read-only for the duration of the call.
func Open(path string, opts *ReadOptions) (*Header, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("fits: open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	h, err := ParseHeader(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// Uncompressed returns a reader over the decompressed contents of r when r
// starts with a gzip or zstd magic number, and over r unchanged otherwise.
// The caller must Close the result; r itself is not closed.
func Uncompressed(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("fits: gzip: %w", err)
		}
		return zr, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("fits: zstd: %w", err)
		}
		return zstdReadCloser{zr}, nil
	}
	return io.NopCloser(br), nil
}

// zstdReadCloser adapts zstd.Decoder, whose Close returns nothing.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
