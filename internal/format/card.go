package format

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/joshuapare/fitskit/pkg/types"
)

// EntryKind classifies a decoded card.
type EntryKind int

const (
	// EntryRecord is a card that decoded into a keyword record.
	EntryRecord EntryKind = iota
	// EntryBlank is an all-space padding card. It yields no record.
	EntryBlank
	// EntryEnd is the terminator card.
	EntryEnd
)

// Entry is the result of decoding one card.
type Entry struct {
	Kind   EntryKind
	Record types.KeywordRecord
}

// IsEnd reports whether card is the terminator: its first three bytes spell
// END. The rest of the card is ignored, so a keyword such as ENDTIME also
// terminates the header.
func IsEnd(card []byte) bool {
	return bytes.HasPrefix(card, EndKeyword)
}

// IsBlank reports whether card holds only spaces.
func IsBlank(card []byte) bool { return isSpaces(card) }

// DecodeCard decodes one 80-byte card. offset is the card's byte offset in
// its block and is carried by any *types.ParseError returned.
//
// Card forms:
//
//	Bytes  Content
//	0-7    keyword, left-justified
//	8-9    "= " on value cards
//	10-79  value, then optional "/ comment"
//
// A card whose first '=' is missing or lies past byte 8 is a commentary
// card: bytes 8-79 are its comment and it carries no value. A commentary
// card needs a keyword; the blank-keyword form (eight spaces then text) used
// by some writers as a separator fails with a ParseError wrapping
// *types.InvalidKeyError.
func DecodeCard(card []byte, offset int) (Entry, error) {
	if len(card) != CardSize {
		return Entry{}, &types.ParseError{
			Offset: offset,
			Detail: fmt.Sprintf("card is %d bytes, want %d", len(card), CardSize),
		}
	}
	if IsEnd(card) {
		return Entry{Kind: EntryEnd}, nil
	}
	if IsBlank(card) {
		return Entry{Kind: EntryBlank}, nil
	}

	eq := bytes.IndexByte(card, EqualSign)
	if eq < 0 || eq > ValueIndicatorOffset {
		return decodeCommentary(card, offset)
	}

	key := string(bytes.TrimRight(card[:eq], " "))
	field, col, err := lexValue(card, eq+1)
	if err != nil {
		return Entry{}, &types.ParseError{Offset: offset, Column: col, Detail: "bad value for " + quoteKey(key), Err: err}
	}

	comment, commentCol := "", 0
	if field.commentStart >= 0 {
		comment, commentCol = trimComment(card, field.commentStart)
	}

	var rec types.KeywordRecord
	if field.value.IsZero() {
		rec, err = types.NewRecord(key, comment)
	} else {
		rec, err = types.NewValueRecord(key, comment, field.value)
	}
	if err != nil {
		return Entry{}, recordError(err, offset, commentCol)
	}
	return Entry{Kind: EntryRecord, Record: rec}, nil
}

func decodeCommentary(card []byte, offset int) (Entry, error) {
	key := string(bytes.TrimRight(card[:KeyFieldSize], " "))
	comment, commentCol := trimComment(card, CommentaryOffset)
	rec, err := types.NewRecord(key, comment)
	if err != nil {
		return Entry{}, recordError(err, offset, commentCol)
	}
	return Entry{Kind: EntryRecord, Record: rec}, nil
}

// trimComment strips surrounding spaces from card[start:] and returns the
// text with the column of its first byte.
func trimComment(card []byte, start int) (string, int) {
	i := skipSpaces(card, start)
	return string(bytes.TrimRight(card[i:], " ")), i
}

// recordError maps a record validation failure to a located parse error.
func recordError(err error, offset, commentCol int) error {
	pe := &types.ParseError{Offset: offset, Err: err}
	var keyErr *types.InvalidKeyError
	var commentErr *types.InvalidCommentError
	switch {
	case errors.As(err, &keyErr):
		pe.Detail = "invalid keyword"
		if keyErr.Index != types.NoIndex {
			pe.Column = keyErr.Index
		}
	case errors.As(err, &commentErr):
		pe.Detail = "invalid comment"
		pe.Column = commentCol + commentErr.Index
	default:
		pe.Detail = "invalid record"
	}
	return pe
}

func quoteKey(key string) string {
	if key == "" {
		return "blank keyword"
	}
	return "keyword " + key
}

func isSpaces(b []byte) bool {
	for _, c := range b {
		if c != Space {
			return false
		}
	}
	return true
}
