package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want ValueKind
	}{
		{"integer", ValueOf(int32(7)), KindInteger},
		{"float", ValueOf(float32(7)), KindFloat},
		{"complex", ValueOf(complex64(7)), KindComplex},
		{"string", ValueOf("7"), KindString},
		{"logical", ValueOf(false), KindLogical},
		{"zero", Value{}, KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Kind())
			assert.Equal(t, tt.want == KindNone, tt.v.IsZero())
		})
	}
}

func TestAs_NoCoercion(t *testing.T) {
	_, err := As[float32](ValueOf(int32(1)))
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = As[int32](ValueOf(float32(1)))
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = As[complex64](ValueOf(float32(1)))
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = As[string](Value{})
	require.ErrorIs(t, err, ErrTypeMismatch)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, ErrKindType, typed.Kind)
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, ValueOf(int32(1)).Equal(ValueOf(int32(1))))
	assert.False(t, ValueOf(int32(1)).Equal(ValueOf(int32(2))))
	assert.False(t, ValueOf(int32(1)).Equal(ValueOf(float32(1))))
	assert.False(t, ValueOf("T").Equal(ValueOf(true)))
	assert.True(t, ValueOf(complex64(complex(1, 2))).Equal(ValueOf(complex64(complex(1, 2)))))
	assert.False(t, ValueOf(complex64(complex(1, 2))).Equal(ValueOf(complex64(complex(1, 3)))))
	assert.True(t, Value{}.Equal(Value{}))
}

func TestValue_Compare(t *testing.T) {
	assert.Equal(t, -1, ValueOf(int32(1)).Compare(ValueOf(int32(2))))
	assert.Equal(t, 1, ValueOf(float32(3)).Compare(ValueOf(float32(2))))
	assert.Equal(t, -1, ValueOf(false).Compare(ValueOf(true)))
	assert.Equal(t, 0, ValueOf("a").Compare(ValueOf("a")))
	assert.Equal(t, -1, ValueOf(complex64(complex(1, 5))).Compare(ValueOf(complex64(complex(2, 0)))))
	assert.Equal(t, -1, ValueOf(complex64(complex(1, 0))).Compare(ValueOf(complex64(complex(1, 1)))))
	// kinds order before payloads
	assert.Equal(t, -1, ValueOf(int32(100)).Compare(ValueOf(float32(1))))
	assert.Equal(t, -1, Value{}.Compare(ValueOf(int32(0))))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "-3", ValueOf(int32(-3)).String())
	assert.Equal(t, "2.5", ValueOf(float32(2.5)).String())
	assert.Equal(t, "(1, -0.5)", ValueOf(complex64(complex(1, -0.5))).String())
	assert.Equal(t, "text", ValueOf("text").String())
	assert.Equal(t, "T", ValueOf(true).String())
	assert.Equal(t, "F", ValueOf(false).String())
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "logical", KindLogical.String())
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, int32(4), ValueOf(int32(4)).Interface())
	assert.Equal(t, []float32{1, 2}, ValueOf(complex64(complex(1, 2))).Interface())
	assert.Nil(t, Value{}.Interface())
}
