package types

import (
	"cmp"
	"strings"
)

// KeywordRecord is one header entry: a key, an optional value, and an
// optional comment. The zero KeywordRecord is not valid; use NewRecord or
// NewValueRecord. Records are plain data and safe to copy.
type KeywordRecord struct {
	key     string
	comment string
	value   Value
}

// NewRecord constructs a record without a value. The key is validated first,
// then the comment.
func NewRecord(key, comment string) (KeywordRecord, error) {
	if err := ValidateKey(key); err != nil {
		return KeywordRecord{}, err
	}
	if err := ValidateComment(comment); err != nil {
		return KeywordRecord{}, err
	}
	return KeywordRecord{key: key, comment: comment}, nil
}

// NewValueRecord constructs a record holding v. Validation order matches
// NewRecord; the value itself carries no character restrictions but must
// not be the zero Value.
func NewValueRecord(key, comment string, v Value) (KeywordRecord, error) {
	r, err := NewRecord(key, comment)
	if err != nil {
		return KeywordRecord{}, err
	}
	if v.IsZero() {
		return KeywordRecord{}, ErrNoValue
	}
	r.value = v
	return r, nil
}

// Key returns the record's keyword.
func (r KeywordRecord) Key() string { return r.key }

// Comment returns the record's comment, or "" when it has none.
func (r KeywordRecord) Comment() string { return r.comment }

// HasComment reports whether the record carries a non-empty comment.
func (r KeywordRecord) HasComment() bool { return r.comment != "" }

// HasValue reports whether the record carries a value.
func (r KeywordRecord) HasValue() bool { return !r.value.IsZero() }

// Value returns the stored value and whether one is present.
func (r KeywordRecord) Value() (Value, bool) {
	return r.value, !r.value.IsZero()
}

// SetComment replaces the comment. On error the record is unchanged.
func (r *KeywordRecord) SetComment(comment string) error {
	if err := ValidateComment(comment); err != nil {
		return err
	}
	r.comment = comment
	return nil
}

// SetValue replaces the value wholesale. On error the record is unchanged.
func (r *KeywordRecord) SetValue(v Value) error {
	if v.IsZero() {
		return ErrNoValue
	}
	r.value = v
	return nil
}

// ClearValue removes the value, leaving a commentary-style record.
func (r *KeywordRecord) ClearValue() { r.value = Value{} }

// Equal reports whether both records have the same key, comment, and value.
// Two records without values compare equal on value.
func (r KeywordRecord) Equal(o KeywordRecord) bool {
	return r.key == o.key && r.comment == o.comment && r.value.Equal(o.value)
}

// String renders the record as "KEY = value / comment" for display.
func (r KeywordRecord) String() string {
	var b strings.Builder
	b.WriteString(r.key)
	if r.HasValue() {
		b.WriteString(" = ")
		if r.value.Kind() == KindString {
			b.WriteString("'" + r.value.String() + "'")
		} else {
			b.WriteString(r.value.String())
		}
	}
	if r.HasComment() {
		if r.HasValue() {
			b.WriteString(" /")
		}
		b.WriteString(" " + r.comment)
	}
	return b.String()
}

// RecordValue returns the record's value as T. It fails with ErrNoValue when
// the record has none and ErrTypeMismatch when the kind differs.
func RecordValue[T Scalar](r KeywordRecord) (T, error) {
	if !r.HasValue() {
		var zero T
		return zero, ErrNoValue
	}
	return As[T](r.value)
}

// Compare orders records by key (byte order), then value, then comment. A
// record without a value sorts before one with a value. The ordering is for
// presentation only; header order is significant and never re-sorted.
func Compare(a, b KeywordRecord) int {
	if c := strings.Compare(a.key, b.key); c != 0 {
		return c
	}
	if c := a.value.Compare(b.value); c != 0 {
		return c
	}
	return cmp.Compare(a.comment, b.comment)
}
