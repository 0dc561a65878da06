package stream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/binstreamio/binstream/internal/codec/prim"
)

// WriteBytes writes b in full.
func (st *Stream) WriteBytes(b []byte) error {
	return st.writeFull(b)
}

// WriteString writes the raw bytes of s with no terminator or length prefix.
func (st *Stream) WriteString(s string) error {
	return st.writeFull([]byte(s))
}

// WriteCString writes s followed by a single NUL byte, the form ReadCString
// reads back.
func (st *Stream) WriteCString(s string) error {
	if err := st.writeFull([]byte(s)); err != nil {
		return err
	}
	return st.writeFull([]byte{0})
}

// WriteInt8 writes a signed byte. The order parameter is ignored for
// single-byte kinds.
func (st *Stream) WriteInt8(v int8, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeInt8(v, o))
}

// WriteUint8 writes a single byte.
func (st *Stream) WriteUint8(v uint8, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeUint8(v, o))
}

// WriteInt16 writes 2 bytes in the given order.
func (st *Stream) WriteInt16(v int16, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeInt16(v, o))
}

// WriteUint16 writes 2 bytes in the given order.
func (st *Stream) WriteUint16(v uint16, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeUint16(v, o))
}

// WriteInt24 writes the low 24 bits of v as 3 bytes in the given order.
func (st *Stream) WriteInt24(v int32, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeInt24(v, o))
}

// WriteUint24 writes the low 24 bits of v as 3 bytes in the given order.
func (st *Stream) WriteUint24(v uint32, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeUint24(v, o))
}

// WriteInt32 writes 4 bytes in the given order.
func (st *Stream) WriteInt32(v int32, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeInt32(v, o))
}

// WriteUint32 writes 4 bytes in the given order.
func (st *Stream) WriteUint32(v uint32, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeUint32(v, o))
}

// WriteInt64 writes 8 bytes in the given order.
func (st *Stream) WriteInt64(v int64, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeInt64(v, o))
}

// WriteUint64 writes 8 bytes in the given order.
func (st *Stream) WriteUint64(v uint64, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeUint64(v, o))
}

// WriteFloat32 writes the value's bit pattern as 4 bytes in the given order.
func (st *Stream) WriteFloat32(v float32, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeFloat32(v, o))
}

// WriteFloat64 writes the value's bit pattern as 8 bytes in the given order.
func (st *Stream) WriteFloat64(v float64, o prim.ByteOrder) error {
	return st.writeFull(prim.EncodeFloat64(v, o))
}

// WriteAny writes one boxed value of the given kind in the given order.
// Unknown kinds and mismatched value types are rejected before any I/O.
func (st *Stream) WriteAny(k prim.Kind, value any, o prim.ByteOrder) error {
	b, err := prim.Encode(k, value, o)
	if err != nil {
		return err
	}
	return st.writeFull(b)
}

// WritePadding writes pad bytes until the stream position is a multiple of
// align. An already aligned position writes nothing; align 0 and 1 are
// no-ops.
func (st *Stream) WritePadding(pad byte, align int64) error {
	if align < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAlignment, align)
	}
	if align < 2 {
		return nil
	}
	pos, err := st.Position()
	if err != nil {
		return err
	}
	n := (align - pos%align) % align
	if n == 0 {
		return nil
	}
	return st.writeFull(bytes.Repeat([]byte{pad}, int(n)))
}

// WriteBytesAt writes b at the absolute offset, then returns to the
// position the stream held before the call: save, seek, write, restore.
func (st *Stream) WriteBytesAt(b []byte, offset int64) error {
	if err := st.Relocate(offset, io.SeekStart); err != nil {
		return err
	}
	werr := st.writeFull(b)
	if err := st.Restore(); err != nil {
		return err
	}
	return werr
}

// WriteAnyAt writes one boxed value of the given kind at the absolute
// offset, restoring the previous position afterwards.
func (st *Stream) WriteAnyAt(k prim.Kind, value any, offset int64, o prim.ByteOrder) error {
	b, err := prim.Encode(k, value, o)
	if err != nil {
		return err
	}
	return st.WriteBytesAt(b, offset)
}
