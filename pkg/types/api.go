package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindKey     ErrKind = iota // key empty, too long, or outside the key alphabet
	ErrKindComment                // comment holds a non-printable character
	ErrKindBlock                  // header block has the wrong length
	ErrKindParse                  // an 80-byte card could not be decoded
	ErrKindType                   // requested value kind doesn't match the stored kind
	ErrKindNoValue                // record carries no value
	ErrKindEncode                 // record has no fixed-width encoding
)

// NoIndex marks a validation failure not tied to a single character.
const NoIndex = -1

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrTypeMismatch indicates a value was read as a kind it does not hold.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "keyword value has different kind"}
	// ErrNoValue indicates the record carries no value.
	ErrNoValue = &Error{Kind: ErrKindNoValue, Msg: "keyword record has no value"}
	// ErrUnencodable indicates the record cannot be written as an 80-byte card.
	ErrUnencodable = &Error{Kind: ErrKindEncode, Msg: "keyword record cannot be encoded"}
)

// InvalidKeyError reports a key that violates the keyword rules. Index is the
// zero-based position of the first offending character, or NoIndex when the
// key is empty. Keys longer than eight characters report index 8.
type InvalidKeyError struct {
	Key   string
	Index int
	Msg   string
}

func (e *InvalidKeyError) Error() string {
	if e.Index == NoIndex {
		return fmt.Sprintf("invalid key %q: %s", e.Key, e.Msg)
	}
	return fmt.Sprintf("invalid key %q at index %d: %s", e.Key, e.Index, e.Msg)
}

// Kind returns ErrKindKey.
func (e *InvalidKeyError) Kind() ErrKind { return ErrKindKey }

// BadCharacter returns the offending byte, or 0 when the error is not
// locatable to a character inside the key.
func (e *InvalidKeyError) BadCharacter() byte {
	return badCharacter(e.Key, e.Index)
}

// InvalidCommentError reports a comment holding a byte outside printable
// ASCII (0x20 through 0x7E). Index is the position of the first such byte.
type InvalidCommentError struct {
	Comment string
	Index   int
}

func (e *InvalidCommentError) Error() string {
	return fmt.Sprintf("invalid comment: non-printable character 0x%02X at index %d",
		e.BadCharacter(), e.Index)
}

// Kind returns ErrKindComment.
func (e *InvalidCommentError) Kind() ErrKind { return ErrKindComment }

// BadCharacter returns the offending byte.
func (e *InvalidCommentError) BadCharacter() byte {
	return badCharacter(e.Comment, e.Index)
}

// InvalidHeaderBlockError reports a header block whose length is not 2880.
type InvalidHeaderBlockError struct {
	Length int
}

func (e *InvalidHeaderBlockError) Error() string {
	return fmt.Sprintf("invalid header block: %d bytes, want 2880", e.Length)
}

// Kind returns ErrKindBlock.
func (e *InvalidHeaderBlockError) Kind() ErrKind { return ErrKindBlock }

// ParseError reports a card that could not be decoded. Offset is the byte
// offset of the card within its block and Column the position inside the
// card where decoding failed. Err holds a nested InvalidKeyError or
// InvalidCommentError when the card text broke the record rules.
type ParseError struct {
	Offset int
	Column int
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error in card at offset %d, column %d: %s", e.Offset, e.Column, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind returns ErrKindParse.
func (e *ParseError) Kind() ErrKind { return ErrKindParse }

func badCharacter(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
