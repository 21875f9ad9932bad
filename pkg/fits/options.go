package fits

// DefaultMaxBlocks bounds the header blocks read while looking for END.
const DefaultMaxBlocks = 1024

// ReadOptions controls header reading behavior.
type ReadOptions struct {
	// MaxBlocks is the number of 2880-byte blocks ReadHeader consumes before
	// giving up on finding END. Zero selects DefaultMaxBlocks.
	MaxBlocks int

	// AllowMissingEnd accepts input that ends on a block boundary without an
	// END card and returns the records read so far.
	AllowMissingEnd bool

	// Decompress detects gzip and zstd input by its magic bytes and
	// decompresses it transparently.
	Decompress bool
}

// DefaultReadOptions returns the options used when nil is passed.
func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{
		MaxBlocks:  DefaultMaxBlocks,
		Decompress: true,
	}
}

func (o *ReadOptions) maxBlocks() int {
	if o.MaxBlocks <= 0 {
		return DefaultMaxBlocks
	}
	return o.MaxBlocks
}
