package prim

// 24-bit integers have no native Go width, so the three bytes are assembled
// and split by hand. Signed values sign-extend from bit 23 into an int32.

// DecodeUint24 reads 3 bytes in the given order, zero-extended to uint32.
func DecodeUint24(b []byte, o ByteOrder) (uint32, error) {
	if err := check(b, 3); err != nil {
		return 0, err
	}
	if o == LittleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// DecodeInt24 reads 3 bytes in the given order, sign-extended from bit 23.
func DecodeInt24(b []byte, o ByteOrder) (int32, error) {
	v, err := DecodeUint24(b, o)
	if err != nil {
		return 0, err
	}
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v), nil
}

// EncodeUint24 emits the low 24 bits of v as 3 bytes in the given order.
func EncodeUint24(v uint32, o ByteOrder) []byte {
	if o == LittleEndian {
		return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
	}
	return []byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// EncodeInt24 emits the low 24 bits of v as 3 bytes in the given order.
// Values in [-8388608, 8388607] round-trip through DecodeInt24.
func EncodeInt24(v int32, o ByteOrder) []byte {
	return EncodeUint24(uint32(v)&0xFFFFFF, o)
}
