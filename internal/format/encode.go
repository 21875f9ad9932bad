package format

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/fitskit/pkg/types"
)

// EncodeCard renders r as one 80-byte card.
//
//	Bytes  Value card                   Commentary card (no value)
//	0-7    keyword, space padded        keyword, space padded
//	8-9    "= "                         comment text ...
//	10-    value token, " / " comment
//
// Strings are quoted starting at byte 10; other kinds are right-justified to
// byte 29. A comment that would overflow the card is truncated; the key and
// value never are.
//
// Spaces are not significant at the edges of a card field, so decoding the
// card yields r with its comment trimmed of leading and trailing spaces and
// any string value trimmed of trailing spaces (see NormalizeRecord). A record
// already in that form decodes back Equal to itself.
func EncodeCard(r types.KeywordRecord) ([]byte, error) {
	return AppendCard(make([]byte, 0, CardSize), r)
}

// AppendCard appends the encoding of r to dst.
func AppendCard(dst []byte, r types.KeywordRecord) ([]byte, error) {
	key := r.Key()
	if err := types.ValidateKey(key); err != nil {
		return dst, fmt.Errorf("%w: %w", types.ErrUnencodable, err)
	}
	if strings.HasPrefix(key, string(EndKeyword)) {
		return dst, fmt.Errorf("%w: keyword %s would read back as the END terminator", types.ErrUnencodable, key)
	}
	card := make([]byte, 0, CardSize)
	card = append(card, padRight(key, KeyFieldSize)...)

	v, ok := r.Value()
	if !ok {
		text := r.Comment()
		if strings.HasPrefix(text, string(EqualSign)) {
			// keep '=' out of the value indicator column
			card = append(card, Space)
		}
		card = appendTruncated(card, text)
		return append(dst, padCard(card)...), nil
	}

	tok, err := encodeValue(v)
	if err != nil {
		return dst, fmt.Errorf("%w: keyword %s: %w", types.ErrUnencodable, key, err)
	}
	card = append(card, ValueIndicator...)
	card = append(card, tok...)
	if r.HasComment() && len(card)+len(CommentPrefix) < CardSize {
		card = append(card, CommentPrefix...)
		card = appendTruncated(card, r.Comment())
	}
	return append(dst, padCard(card)...), nil
}

// EncodeHeader renders records followed by an END card, space padded to a
// whole number of blocks.
func EncodeHeader(records []types.KeywordRecord) ([]byte, error) {
	n := (len(records) + 1) * CardSize
	out := make([]byte, 0, (n+BlockSize-1)/BlockSize*BlockSize)
	for _, r := range records {
		var err error
		out, err = AppendCard(out, r)
		if err != nil {
			return nil, err
		}
	}
	out = append(out, padCard(EndKeyword)...)
	if rem := len(out) % BlockSize; rem != 0 {
		out = append(out, bytes.Repeat([]byte{Space}, BlockSize-rem)...)
	}
	return out, nil
}

// EndCard returns a terminator card.
func EndCard() []byte { return padCard(EndKeyword) }

func encodeValue(v types.Value) (string, error) {
	width := FixedValueEnd - ValueFieldOffset
	switch v.Kind() {
	case types.KindString:
		s, _ := types.As[string](v)
		for i := 0; i < len(s); i++ {
			if !types.IsPrintable(s[i]) {
				return "", fmt.Errorf("string has non-printable character at index %d", i)
			}
		}
		tok := "'" + padRight(strings.ReplaceAll(s, "'", "''"), MinStringWidth) + "'"
		if len(tok) > MaxStringToken {
			return "", fmt.Errorf("string token is %d bytes, limit %d", len(tok), MaxStringToken)
		}
		return tok, nil
	case types.KindLogical:
		return padLeft(v.String(), width), nil
	case types.KindInteger:
		return padLeft(v.String(), width), nil
	case types.KindFloat:
		f, _ := types.As[float32](v)
		s, err := formatFloat(f)
		if err != nil {
			return "", err
		}
		return padLeft(s, width), nil
	case types.KindComplex:
		c, _ := types.As[complex64](v)
		re, err := formatFloat(real(c))
		if err != nil {
			return "", err
		}
		im, err := formatFloat(imag(c))
		if err != nil {
			return "", err
		}
		return padLeft("("+re+", "+im+")", width), nil
	}
	return "", fmt.Errorf("no literal for %s value", v.Kind())
}

// formatFloat renders f so that it lexes back as a float, never an integer.
func formatFloat(f float32) (string, error) {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return "", fmt.Errorf("no literal for %v", f)
	}
	s := strconv.FormatFloat(float64(f), 'G', -1, 32)
	if !strings.ContainsAny(s, ".E") {
		s += ".0"
	}
	return s, nil
}

func appendTruncated(card []byte, text string) []byte {
	if room := CardSize - len(card); len(text) > room {
		text = text[:room]
	}
	return append(card, text...)
}

func padCard(b []byte) []byte {
	out := make([]byte, CardSize)
	n := copy(out, b)
	for i := n; i < CardSize; i++ {
		out[i] = Space
	}
	return out
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}

// NormalizeRecord returns r as it reads back after EncodeCard and DecodeCard,
// truncation aside: the comment trimmed of surrounding spaces and a string
// value trimmed of trailing spaces.
func NormalizeRecord(r types.KeywordRecord) types.KeywordRecord {
	// trimming spaces keeps a valid comment valid
	_ = r.SetComment(strings.Trim(r.Comment(), string(Space)))
	if v, ok := r.Value(); ok && v.Kind() == types.KindString {
		s, _ := types.As[string](v)
		_ = r.SetValue(types.ValueOf(strings.TrimRight(s, string(Space))))
	}
	return r
}
