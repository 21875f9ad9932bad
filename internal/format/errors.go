package format

import "errors"

var (
	// ErrUnterminatedString indicates a quoted string with no closing quote.
	ErrUnterminatedString = errors.New("format: unterminated string")
	// ErrBadLiteral indicates a value field that matches no literal form.
	ErrBadLiteral = errors.New("format: unrecognized value literal")
	// ErrOutOfRange indicates a numeric literal that does not fit its kind.
	ErrOutOfRange = errors.New("format: numeric literal out of range")
	// ErrTrailingText indicates bytes between a value and its comment.
	ErrTrailingText = errors.New("format: unexpected text after value")
)
