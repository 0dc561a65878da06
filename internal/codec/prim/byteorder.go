package prim

import (
	"encoding/binary"
	"fmt"
)

// ByteOrder selects how the bytes of a multi-byte value are laid out.
// It is supplied explicitly on every operation; the codec never infers
// an order from the platform.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// String implements fmt.Stringer.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// ParseByteOrder maps the textual names accepted on the CLI and in config
// files ("big", "be", "little", "le") to a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "big", "be", "big-endian":
		return BigEndian, nil
	case "little", "le", "little-endian":
		return LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q", s)
	}
}

// order returns the encoding/binary implementation for standard widths.
// 24-bit values are assembled by hand, see uint24.go.
func (o ByteOrder) order() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
