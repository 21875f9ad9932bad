package format

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/fitskit/pkg/types"
)

// valueField is the lexed remainder of a card after its '='.
type valueField struct {
	value        types.Value // zero when the field is empty
	commentStart int         // index of the first comment byte, or -1
}

// lexValue classifies the value that begins at card[start:]. On failure it
// returns the column where lexing stopped.
func lexValue(card []byte, start int) (valueField, int, error) {
	out := valueField{commentStart: -1}
	i := skipSpaces(card, start)
	if i == len(card) {
		return out, 0, nil
	}
	if card[i] == Slash {
		out.commentStart = i + 1
		return out, 0, nil
	}
	if card[i] == Quote {
		s, next, err := lexString(card, i)
		if err != nil {
			return out, i, err
		}
		out.value = types.ValueOf(s)
		j := skipSpaces(card, next)
		switch {
		case j == len(card):
		case card[j] == Slash:
			out.commentStart = j + 1
		default:
			return out, j, ErrTrailingText
		}
		return out, 0, nil
	}

	end := bytes.IndexByte(card[i:], Slash)
	if end < 0 {
		end = len(card)
	} else {
		end += i
		out.commentStart = end + 1
	}
	tok := string(bytes.TrimRight(card[i:end], " "))
	v, err := lexToken(tok)
	if err != nil {
		return out, i, err
	}
	out.value = v
	return out, 0, nil
}

// lexString reads a quoted string starting at card[i] == '\''. A doubled
// quote stands for one quote character. Trailing spaces are not significant.
func lexString(card []byte, i int) (string, int, error) {
	var b strings.Builder
	j := i + 1
	for {
		if j >= len(card) {
			return "", j, ErrUnterminatedString
		}
		c := card[j]
		if c == Quote {
			if j+1 < len(card) && card[j+1] == Quote {
				b.WriteByte(Quote)
				j += 2
				continue
			}
			return strings.TrimRight(b.String(), " "), j + 1, nil
		}
		b.WriteByte(c)
		j++
	}
}

// lexToken classifies an unquoted value token.
func lexToken(tok string) (types.Value, error) {
	switch {
	case tok == string(LogicalTrue):
		return types.ValueOf(true), nil
	case tok == string(LogicalFalse):
		return types.ValueOf(false), nil
	case strings.HasPrefix(tok, string(OpenParen)):
		return lexComplex(tok)
	case isIntegerLiteral(tok):
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return types.Value{}, fmt.Errorf("%w: %q", ErrOutOfRange, tok)
		}
		return types.ValueOf(int32(n)), nil
	case isFloatLiteral(tok):
		f, err := parseFloat32(tok)
		if err != nil {
			return types.Value{}, err
		}
		return types.ValueOf(f), nil
	}
	return types.Value{}, fmt.Errorf("%w: %q", ErrBadLiteral, tok)
}

func lexComplex(tok string) (types.Value, error) {
	if !strings.HasSuffix(tok, string(CloseParen)) {
		return types.Value{}, fmt.Errorf("%w: unclosed complex %q", ErrBadLiteral, tok)
	}
	re, im, ok := strings.Cut(tok[1:len(tok)-1], string(Comma))
	if !ok {
		return types.Value{}, fmt.Errorf("%w: complex %q needs two parts", ErrBadLiteral, tok)
	}
	parts := [2]float32{}
	for n, p := range [2]string{re, im} {
		p = strings.TrimSpace(p)
		if !isIntegerLiteral(p) && !isFloatLiteral(p) {
			return types.Value{}, fmt.Errorf("%w: complex part %q", ErrBadLiteral, p)
		}
		f, err := parseFloat32(p)
		if err != nil {
			return types.Value{}, err
		}
		parts[n] = f
	}
	return types.ValueOf(complex(parts[0], parts[1])), nil
}

func parseFloat32(tok string) (float32, error) {
	norm := strings.NewReplacer("D", "E", "d", "E").Replace(tok)
	f, err := strconv.ParseFloat(norm, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOutOfRange, tok)
		}
		return 0, fmt.Errorf("%w: %q", ErrBadLiteral, tok)
	}
	return float32(f), nil
}

// isIntegerLiteral matches [+-]?[0-9]+.
func isIntegerLiteral(s string) bool {
	s = trimSign(s)
	return s != "" && digitsEnd(s, 0) == len(s)
}

// isFloatLiteral matches [+-]?(d+[.d*]|.d+)([EeDd][+-]?d+)? where a '.' or
// an exponent is present.
func isFloatLiteral(s string) bool {
	s = trimSign(s)
	i := digitsEnd(s, 0)
	mantissa := i
	dot := false
	if i < len(s) && s[i] == '.' {
		dot = true
		j := digitsEnd(s, i+1)
		mantissa += j - (i + 1)
		i = j
	}
	if mantissa == 0 {
		return false
	}
	exp := false
	if i < len(s) && strings.IndexByte("EeDd", s[i]) >= 0 {
		exp = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		j := digitsEnd(s, i)
		if j == i {
			return false
		}
		i = j
	}
	return i == len(s) && (dot || exp)
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}
	return s
}

func digitsEnd(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func skipSpaces(b []byte, i int) int {
	for i < len(b) && b[i] == Space {
		i++
	}
	return i
}
