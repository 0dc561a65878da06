package prim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		value any
	}{
		{name: "int8 zero", kind: Int8, value: int8(0)},
		{name: "int8 min", kind: Int8, value: int8(math.MinInt8)},
		{name: "int8 max", kind: Int8, value: int8(math.MaxInt8)},
		{name: "int8 minus one", kind: Int8, value: int8(-1)},
		{name: "uint8 zero", kind: Uint8, value: uint8(0)},
		{name: "uint8 max", kind: Uint8, value: uint8(math.MaxUint8)},
		{name: "int16 min", kind: Int16, value: int16(math.MinInt16)},
		{name: "int16 max", kind: Int16, value: int16(math.MaxInt16)},
		{name: "int16 minus one", kind: Int16, value: int16(-1)},
		{name: "uint16 max", kind: Uint16, value: uint16(math.MaxUint16)},
		{name: "int24 min", kind: Int24, value: int32(-8388608)},
		{name: "int24 max", kind: Int24, value: int32(8388607)},
		{name: "int24 minus one", kind: Int24, value: int32(-1)},
		{name: "int24 zero", kind: Int24, value: int32(0)},
		{name: "uint24 max", kind: Uint24, value: uint32(0xFFFFFF)},
		{name: "uint24 mid", kind: Uint24, value: uint32(0x123456)},
		{name: "int32 min", kind: Int32, value: int32(math.MinInt32)},
		{name: "int32 max", kind: Int32, value: int32(math.MaxInt32)},
		{name: "int32 minus one", kind: Int32, value: int32(-1)},
		{name: "uint32 max", kind: Uint32, value: uint32(math.MaxUint32)},
		{name: "int64 min", kind: Int64, value: int64(math.MinInt64)},
		{name: "int64 max", kind: Int64, value: int64(math.MaxInt64)},
		{name: "int64 minus one", kind: Int64, value: int64(-1)},
		{name: "uint64 max", kind: Uint64, value: uint64(math.MaxUint64)},
		{name: "float32 pi", kind: Float32, value: float32(3.14159)},
		{name: "float32 neg inf", kind: Float32, value: float32(math.Inf(-1))},
		{name: "float32 smallest", kind: Float32, value: float32(math.SmallestNonzeroFloat32)},
		{name: "float64 e", kind: Float64, value: float64(2.718281828459045)},
		{name: "float64 max", kind: Float64, value: float64(math.MaxFloat64)},
	}

	for _, tt := range tests {
		for _, order := range []ByteOrder{BigEndian, LittleEndian} {
			t.Run(tt.name+" "+order.String(), func(t *testing.T) {
				encoded, err := Encode(tt.kind, tt.value, order)
				require.NoError(t, err)
				assert.Len(t, encoded, tt.kind.Size())

				decoded, err := Decode(tt.kind, encoded, order)
				require.NoError(t, err)
				assert.Equal(t, tt.value, decoded)
			})
		}
	}
}

func TestInt24SignExtension(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		expected int32
	}{
		{name: "minus one", bytes: []byte{0xFF, 0xFF, 0xFF}, expected: -1},
		{name: "max positive", bytes: []byte{0x7F, 0xFF, 0xFF}, expected: 8388607},
		{name: "min negative", bytes: []byte{0x80, 0x00, 0x00}, expected: -8388608},
		{name: "zero", bytes: []byte{0x00, 0x00, 0x00}, expected: 0},
		{name: "one", bytes: []byte{0x00, 0x00, 0x01}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeInt24(tt.bytes, BigEndian)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)

			assert.Equal(t, tt.bytes, EncodeInt24(tt.expected, BigEndian))
		})
	}
}

func TestUint24ZeroExtension(t *testing.T) {
	v, err := DecodeUint24([]byte{0xFF, 0xFF, 0xFF}, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFF), v)

	v, err = DecodeUint24([]byte{0x12, 0x34, 0x56}, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x563412), v)
}

func TestByteOrderDistinctness(t *testing.T) {
	const v = uint32(0x01020304)

	be := EncodeUint32(v, BigEndian)
	le := EncodeUint32(v, LittleEndian)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le)
	assert.NotEqual(t, be, le)

	// Decoding one order's bytes with the other yields the byte-swapped value.
	swapped, err := DecodeUint32(be, LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), swapped)
	assert.NotEqual(t, v, swapped)
}

func TestFloatBitPatterns(t *testing.T) {
	// A NaN payload must survive the trip: the codec reinterprets bits, it
	// never converts numerically.
	bits := uint32(0x7FC00001)
	encoded := EncodeFloat32(math.Float32frombits(bits), BigEndian)
	decoded, err := DecodeUint32(encoded, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, bits, decoded)
}

func TestDecodeShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		buf  []byte
	}{
		{name: "uint16 one byte", kind: Uint16, buf: []byte{0x01}},
		{name: "uint24 two bytes", kind: Uint24, buf: []byte{0x01, 0x02}},
		{name: "uint32 empty", kind: Uint32, buf: nil},
		{name: "float64 seven bytes", kind: Float64, buf: make([]byte, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.kind, tt.buf, BigEndian)
			assert.ErrorIs(t, err, ErrShortBuffer)
		})
	}
}

func TestDispatchUnsupportedKind(t *testing.T) {
	_, err := Decode(Kind(200), []byte{0x00}, BigEndian)
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = Encode(Kind(200), uint8(0), BigEndian)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestEncodeKindMismatch(t *testing.T) {
	_, err := Encode(Uint16, int32(5), BigEndian)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = Encode(Int24, int64(5), BigEndian)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestKindSize(t *testing.T) {
	sizes := map[Kind]int{
		Int8: 1, Uint8: 1,
		Int16: 2, Uint16: 2,
		Int24: 3, Uint24: 3,
		Int32: 4, Uint32: 4, Float32: 4,
		Int64: 8, Uint64: 8, Float64: 8,
	}
	for k, want := range sizes {
		assert.Equal(t, want, k.Size(), k.String())
	}
	assert.Equal(t, 0, Kind(200).Size())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("uint24")
	require.NoError(t, err)
	assert.Equal(t, Uint24, k)

	_, err = ParseKind("complex128")
	assert.Error(t, err)
}

func TestParseByteOrder(t *testing.T) {
	tests := []struct {
		in       string
		expected ByteOrder
	}{
		{in: "big", expected: BigEndian},
		{in: "be", expected: BigEndian},
		{in: "big-endian", expected: BigEndian},
		{in: "little", expected: LittleEndian},
		{in: "le", expected: LittleEndian},
		{in: "little-endian", expected: LittleEndian},
	}
	for _, tt := range tests {
		o, err := ParseByteOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, o, tt.in)
	}

	_, err := ParseByteOrder("middle")
	assert.Error(t, err)
}
