// Package mem provides the sized little-endian access primitives and the
// flat memory blocks that every bus component is built on.
package mem

// Value is the set of fixed-width types that can be moved between the CPU
// and a raw byte region: unsigned and signed bytes, and little-endian
// 16-bit words.
type Value interface {
	uint8 | int8 | uint16
}

// Size returns the width of T in bytes.
func Size[T Value]() uint8 {
	var v T
	switch any(v).(type) {
	case uint16:
		return 2
	default:
		return 1
	}
}

// Read reads a value of type T from buf starting at off, little-endian.
// Offsets outside the buffer are a programmer defect, not a runtime
// condition, and panic.
func Read[T Value](buf []byte, off uint16) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = buf[off]
	case *int8:
		*p = int8(buf[off])
	case *uint16:
		*p = uint16(buf[off]) | uint16(buf[off+1])<<8
	}
	return v
}

// Write writes a value of type T into buf starting at off, little-endian.
func Write[T Value](buf []byte, off uint16, v T) {
	switch v := any(v).(type) {
	case uint8:
		buf[off] = v
	case int8:
		buf[off] = uint8(v)
	case uint16:
		buf[off] = uint8(v)
		buf[off+1] = uint8(v >> 8)
	}
}
