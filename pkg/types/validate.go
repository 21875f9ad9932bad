package types

// MaxKeyLength is the width of the keyword field of a card.
const MaxKeyLength = 8

// ValidateKey checks key against the keyword rules: one to eight characters
// drawn from 0-9, A-Z, underscore, and hyphen. Lowercase is rejected, not
// folded. The returned error is an *InvalidKeyError.
func ValidateKey(key string) error {
	if key == "" {
		return &InvalidKeyError{Key: key, Index: NoIndex, Msg: "key may not be empty"}
	}
	if len(key) > MaxKeyLength {
		return &InvalidKeyError{Key: key, Index: MaxKeyLength, Msg: "key may not exceed 8 characters"}
	}
	for i := 0; i < len(key); i++ {
		if !IsKeyChar(key[i]) {
			return &InvalidKeyError{Key: key, Index: i, Msg: "key has an invalid character"}
		}
	}
	return nil
}

// ValidateComment checks that every byte of comment is printable ASCII.
// The empty comment is valid. The returned error is an *InvalidCommentError.
func ValidateComment(comment string) error {
	for i := 0; i < len(comment); i++ {
		if !IsPrintable(comment[i]) {
			return &InvalidCommentError{Comment: comment, Index: i}
		}
	}
	return nil
}

// IsKeyChar reports whether c may appear in a keyword.
func IsKeyChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') || c == '_' || c == '-'
}

// IsPrintable reports whether c lies in 0x20..0x7E.
func IsPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}
