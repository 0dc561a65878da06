// Package prim encodes and decodes fixed-width numeric primitives to and
// from byte buffers with an explicit, per-call byte order. It is the
// buffer-level half of the codec; stream-level operations live in the
// stream package.
package prim

import (
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is returned when a decode is handed fewer bytes than the
// kind's encoded width.
var ErrShortBuffer = errors.New("buffer shorter than primitive width")

// ErrUnsupportedKind is returned by the dispatcher for a Kind outside the
// closed primitive set.
var ErrUnsupportedKind = errors.New("unsupported primitive kind")

// ErrKindMismatch is returned by Encode when the supplied value's type does
// not match the requested kind.
var ErrKindMismatch = errors.New("value type does not match primitive kind")

func check(b []byte, width int) error {
	if len(b) < width {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, width, len(b))
	}
	return nil
}

// DecodeUint8 reads a single byte. The byte order is irrelevant at this
// width and is accepted only for uniformity with the other kinds.
func DecodeUint8(b []byte, _ ByteOrder) (uint8, error) {
	if err := check(b, 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

// DecodeInt8 reads a single byte as a signed value.
func DecodeInt8(b []byte, o ByteOrder) (int8, error) {
	v, err := DecodeUint8(b, o)
	return int8(v), err
}

// DecodeUint16 reads 2 bytes in the given order.
func DecodeUint16(b []byte, o ByteOrder) (uint16, error) {
	if err := check(b, 2); err != nil {
		return 0, err
	}
	return o.order().Uint16(b), nil
}

// DecodeInt16 reads 2 bytes in the given order as a signed value.
func DecodeInt16(b []byte, o ByteOrder) (int16, error) {
	v, err := DecodeUint16(b, o)
	return int16(v), err
}

// DecodeUint32 reads 4 bytes in the given order.
func DecodeUint32(b []byte, o ByteOrder) (uint32, error) {
	if err := check(b, 4); err != nil {
		return 0, err
	}
	return o.order().Uint32(b), nil
}

// DecodeInt32 reads 4 bytes in the given order as a signed value.
func DecodeInt32(b []byte, o ByteOrder) (int32, error) {
	v, err := DecodeUint32(b, o)
	return int32(v), err
}

// DecodeUint64 reads 8 bytes in the given order.
func DecodeUint64(b []byte, o ByteOrder) (uint64, error) {
	if err := check(b, 8); err != nil {
		return 0, err
	}
	return o.order().Uint64(b), nil
}

// DecodeInt64 reads 8 bytes in the given order as a signed value.
func DecodeInt64(b []byte, o ByteOrder) (int64, error) {
	v, err := DecodeUint64(b, o)
	return int64(v), err
}

// DecodeFloat32 reads 4 bytes in the given order and reinterprets the bit
// pattern as an IEEE-754 float. Every bit pattern is valid; NaN and Inf
// pass through untouched.
func DecodeFloat32(b []byte, o ByteOrder) (float32, error) {
	bits, err := DecodeUint32(b, o)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// DecodeFloat64 reads 8 bytes in the given order and reinterprets the bit
// pattern as an IEEE-754 double.
func DecodeFloat64(b []byte, o ByteOrder) (float64, error) {
	bits, err := DecodeUint64(b, o)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// EncodeUint8 emits the value's single byte.
func EncodeUint8(v uint8, _ ByteOrder) []byte {
	return []byte{v}
}

// EncodeInt8 emits the value's single byte.
func EncodeInt8(v int8, o ByteOrder) []byte {
	return EncodeUint8(uint8(v), o)
}

// EncodeUint16 emits 2 bytes in the given order.
func EncodeUint16(v uint16, o ByteOrder) []byte {
	b := make([]byte, 2)
	o.order().PutUint16(b, v)
	return b
}

// EncodeInt16 emits 2 bytes in the given order.
func EncodeInt16(v int16, o ByteOrder) []byte {
	return EncodeUint16(uint16(v), o)
}

// EncodeUint32 emits 4 bytes in the given order.
func EncodeUint32(v uint32, o ByteOrder) []byte {
	b := make([]byte, 4)
	o.order().PutUint32(b, v)
	return b
}

// EncodeInt32 emits 4 bytes in the given order.
func EncodeInt32(v int32, o ByteOrder) []byte {
	return EncodeUint32(uint32(v), o)
}

// EncodeUint64 emits 8 bytes in the given order.
func EncodeUint64(v uint64, o ByteOrder) []byte {
	b := make([]byte, 8)
	o.order().PutUint64(b, v)
	return b
}

// EncodeInt64 emits 8 bytes in the given order.
func EncodeInt64(v int64, o ByteOrder) []byte {
	return EncodeUint64(uint64(v), o)
}

// EncodeFloat32 emits the value's bit pattern as 4 bytes in the given order.
func EncodeFloat32(v float32, o ByteOrder) []byte {
	return EncodeUint32(math.Float32bits(v), o)
}

// EncodeFloat64 emits the value's bit pattern as 8 bytes in the given order.
func EncodeFloat64(v float64, o ByteOrder) []byte {
	return EncodeUint64(math.Float64bits(v), o)
}

// Decode dispatches to the decoder for kind. Values come back boxed with
// their natural Go type: int24 as int32, uint24 as uint32, everything else
// as the type matching its name.
func Decode(k Kind, b []byte, o ByteOrder) (any, error) {
	switch k {
	case Int8:
		return DecodeInt8(b, o)
	case Uint8:
		return DecodeUint8(b, o)
	case Int16:
		return DecodeInt16(b, o)
	case Uint16:
		return DecodeUint16(b, o)
	case Int24:
		return DecodeInt24(b, o)
	case Uint24:
		return DecodeUint24(b, o)
	case Int32:
		return DecodeInt32(b, o)
	case Uint32:
		return DecodeUint32(b, o)
	case Int64:
		return DecodeInt64(b, o)
	case Uint64:
		return DecodeUint64(b, o)
	case Float32:
		return DecodeFloat32(b, o)
	case Float64:
		return DecodeFloat64(b, o)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
}

// Encode dispatches to the encoder for kind. The boxed value must carry the
// same Go type Decode produces for that kind.
func Encode(k Kind, value any, o ByteOrder) ([]byte, error) {
	mismatch := func() ([]byte, error) {
		return nil, fmt.Errorf("%w: kind %s, value %T", ErrKindMismatch, k, value)
	}
	switch k {
	case Int8:
		v, ok := value.(int8)
		if !ok {
			return mismatch()
		}
		return EncodeInt8(v, o), nil
	case Uint8:
		v, ok := value.(uint8)
		if !ok {
			return mismatch()
		}
		return EncodeUint8(v, o), nil
	case Int16:
		v, ok := value.(int16)
		if !ok {
			return mismatch()
		}
		return EncodeInt16(v, o), nil
	case Uint16:
		v, ok := value.(uint16)
		if !ok {
			return mismatch()
		}
		return EncodeUint16(v, o), nil
	case Int24:
		v, ok := value.(int32)
		if !ok {
			return mismatch()
		}
		return EncodeInt24(v, o), nil
	case Uint24:
		v, ok := value.(uint32)
		if !ok {
			return mismatch()
		}
		return EncodeUint24(v, o), nil
	case Int32:
		v, ok := value.(int32)
		if !ok {
			return mismatch()
		}
		return EncodeInt32(v, o), nil
	case Uint32:
		v, ok := value.(uint32)
		if !ok {
			return mismatch()
		}
		return EncodeUint32(v, o), nil
	case Int64:
		v, ok := value.(int64)
		if !ok {
			return mismatch()
		}
		return EncodeInt64(v, o), nil
	case Uint64:
		v, ok := value.(uint64)
		if !ok {
			return mismatch()
		}
		return EncodeUint64(v, o), nil
	case Float32:
		v, ok := value.(float32)
		if !ok {
			return mismatch()
		}
		return EncodeFloat32(v, o), nil
	case Float64:
		v, ok := value.(float64)
		if !ok {
			return mismatch()
		}
		return EncodeFloat64(v, o), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
}
