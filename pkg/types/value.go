package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is the closed set of Go types a keyword value may hold.
type Scalar interface {
	int32 | float32 | complex64 | string | bool
}

// ValueKind enumerates the payload kinds a Value can carry.
type ValueKind uint8

const (
	// KindNone is the kind of the zero Value. It never appears in a record.
	KindNone ValueKind = iota
	KindInteger
	KindFloat
	KindComplex
	KindString
	KindLogical
)

// String implements the Stringer interface for ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindString:
		return "string"
	case KindLogical:
		return "logical"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// kindOf maps a Scalar type parameter to its ValueKind.
func kindOf[T Scalar]() ValueKind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInteger
	case float32:
		return KindFloat
	case complex64:
		return KindComplex
	case string:
		return KindString
	case bool:
		return KindLogical
	}
	return KindNone
}

// Value is an immutable keyword value. Construct it with ValueOf; the zero
// Value holds nothing and is rejected wherever a value is required.
type Value struct {
	kind ValueKind
	i    int32
	f    float32
	c    complex64
	s    string
	b    bool
}

// ValueOf wraps v in a Value.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return Value{kind: KindInteger, i: x}
	case float32:
		return Value{kind: KindFloat, f: x}
	case complex64:
		return Value{kind: KindComplex, c: x}
	case string:
		return Value{kind: KindString, s: x}
	case bool:
		return Value{kind: KindLogical, b: x}
	}
	return Value{}
}

// As returns the payload of v as T. It fails with ErrTypeMismatch when v
// holds a different kind; no numeric coercion is performed.
func As[T Scalar](v Value) (T, error) {
	var zero T
	want := kindOf[T]()
	if v.kind != want {
		return zero, fmt.Errorf("%w: holds %s, requested %s", ErrTypeMismatch, v.kind, want)
	}
	var out any
	switch v.kind {
	case KindInteger:
		out = v.i
	case KindFloat:
		out = v.f
	case KindComplex:
		out = v.c
	case KindString:
		out = v.s
	case KindLogical:
		out = v.b
	}
	return out.(T), nil
}

// Kind reports the payload kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether v is the zero Value.
func (v Value) IsZero() bool { return v.kind == KindNone }

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindComplex:
		return v.c == o.c
	case KindString:
		return v.s == o.s
	case KindLogical:
		return v.b == o.b
	}
	return true
}

// Compare orders values by kind, then by payload. Complex values compare
// real parts first; false sorts before true.
func (v Value) Compare(o Value) int {
	if c := cmp.Compare(v.kind, o.kind); c != 0 {
		return c
	}
	switch v.kind {
	case KindInteger:
		return cmp.Compare(v.i, o.i)
	case KindFloat:
		return cmp.Compare(v.f, o.f)
	case KindComplex:
		if c := cmp.Compare(real(v.c), real(o.c)); c != 0 {
			return c
		}
		return cmp.Compare(imag(v.c), imag(o.c))
	case KindString:
		return strings.Compare(v.s, o.s)
	case KindLogical:
		switch {
		case v.b == o.b:
			return 0
		case !v.b:
			return -1
		default:
			return 1
		}
	}
	return 0
}

// String renders the payload for display. Logical values print as T or F.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'G', -1, 32)
	case KindComplex:
		return "(" + strconv.FormatFloat(float64(real(v.c)), 'G', -1, 32) + ", " +
			strconv.FormatFloat(float64(imag(v.c)), 'G', -1, 32) + ")"
	case KindString:
		return v.s
	case KindLogical:
		if v.b {
			return "T"
		}
		return "F"
	}
	return ""
}

// Interface returns the payload as an untyped Go value, or nil for the zero
// Value. Useful for JSON encoding.
func (v Value) Interface() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindComplex:
		return []float32{real(v.c), imag(v.c)}
	case KindString:
		return v.s
	case KindLogical:
		return v.b
	}
	return nil
}
