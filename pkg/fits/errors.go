package fits

import "errors"

var (
	// ErrMissingEnd indicates the input ended before an END card.
	ErrMissingEnd = errors.New("fits: header has no END card")
	// ErrTooManyBlocks indicates ReadOptions.MaxBlocks was reached before END.
	ErrTooManyBlocks = errors.New("fits: header block limit exceeded")
	// ErrKeyNotFound indicates a keyword is absent from the header.
	ErrKeyNotFound = errors.New("fits: keyword not found")
)
