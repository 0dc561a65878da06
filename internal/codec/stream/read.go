package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/binstreamio/binstream/internal/codec/prim"
)

// ReadBytes reads exactly n bytes. Fewer available bytes is an error; the
// stream position is left where the partial read stopped.
func (st *Stream) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if st.r == nil {
		return nil, ErrNotReadable
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(st.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadString reads up to n bytes as a string. Reaching end-of-stream early
// is not an error: the string is simply shorter.
func (st *Stream) ReadString(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if st.r == nil {
		return "", ErrNotReadable
	}
	b := make([]byte, n)
	read, err := io.ReadFull(st.r, b)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	return string(b[:read]), nil
}

// ReadInt8 reads a signed byte. The order parameter is ignored for
// single-byte kinds.
func (st *Stream) ReadInt8(o prim.ByteOrder) (int8, error) {
	b, err := st.readExact(1)
	if err != nil {
		return 0, err
	}
	return prim.DecodeInt8(b, o)
}

// ReadUint8 reads a single byte.
func (st *Stream) ReadUint8(o prim.ByteOrder) (uint8, error) {
	b, err := st.readExact(1)
	if err != nil {
		return 0, err
	}
	return prim.DecodeUint8(b, o)
}

// ReadInt16 reads 2 bytes in the given order.
func (st *Stream) ReadInt16(o prim.ByteOrder) (int16, error) {
	b, err := st.readExact(2)
	if err != nil {
		return 0, err
	}
	return prim.DecodeInt16(b, o)
}

// ReadUint16 reads 2 bytes in the given order.
func (st *Stream) ReadUint16(o prim.ByteOrder) (uint16, error) {
	b, err := st.readExact(2)
	if err != nil {
		return 0, err
	}
	return prim.DecodeUint16(b, o)
}

// ReadInt24 reads 3 bytes in the given order, sign-extended from bit 23.
func (st *Stream) ReadInt24(o prim.ByteOrder) (int32, error) {
	b, err := st.readExact(3)
	if err != nil {
		return 0, err
	}
	return prim.DecodeInt24(b, o)
}

// ReadUint24 reads 3 bytes in the given order, zero-extended.
func (st *Stream) ReadUint24(o prim.ByteOrder) (uint32, error) {
	b, err := st.readExact(3)
	if err != nil {
		return 0, err
	}
	return prim.DecodeUint24(b, o)
}

// ReadInt32 reads 4 bytes in the given order.
func (st *Stream) ReadInt32(o prim.ByteOrder) (int32, error) {
	b, err := st.readExact(4)
	if err != nil {
		return 0, err
	}
	return prim.DecodeInt32(b, o)
}

// ReadUint32 reads 4 bytes in the given order.
func (st *Stream) ReadUint32(o prim.ByteOrder) (uint32, error) {
	b, err := st.readExact(4)
	if err != nil {
		return 0, err
	}
	return prim.DecodeUint32(b, o)
}

// ReadInt64 reads 8 bytes in the given order.
func (st *Stream) ReadInt64(o prim.ByteOrder) (int64, error) {
	b, err := st.readExact(8)
	if err != nil {
		return 0, err
	}
	return prim.DecodeInt64(b, o)
}

// ReadUint64 reads 8 bytes in the given order.
func (st *Stream) ReadUint64(o prim.ByteOrder) (uint64, error) {
	b, err := st.readExact(8)
	if err != nil {
		return 0, err
	}
	return prim.DecodeUint64(b, o)
}

// ReadFloat32 reads 4 bytes in the given order as an IEEE-754 float.
func (st *Stream) ReadFloat32(o prim.ByteOrder) (float32, error) {
	b, err := st.readExact(4)
	if err != nil {
		return 0, err
	}
	return prim.DecodeFloat32(b, o)
}

// ReadFloat64 reads 8 bytes in the given order as an IEEE-754 double.
func (st *Stream) ReadFloat64(o prim.ByteOrder) (float64, error) {
	b, err := st.readExact(8)
	if err != nil {
		return 0, err
	}
	return prim.DecodeFloat64(b, o)
}

// ReadAny reads one value of the given kind in the given order, boxed with
// the kind's natural Go type. An unknown kind is rejected before any I/O.
func (st *Stream) ReadAny(k prim.Kind, o prim.ByteOrder) (any, error) {
	size := k.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s", prim.ErrUnsupportedKind, k)
	}
	b, err := st.readExact(size)
	if err != nil {
		return nil, err
	}
	return prim.Decode(k, b, o)
}
