// Package endian provides the byte-order engines used to move integers
// between host and wire representation.
//
// The protocol defines network byte order as little-endian: most machines
// speaking it are little-endian, so the common case is a straight copy and
// only big-endian hosts pay for a swap. GetNetworkEngine returns that
// canonical order; writers and readers of wire data should always use it:
//
//	engine := endian.GetNetworkEngine()
//	buf = engine.AppendUint64(buf, sequence)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so an engine
// drops into any code already written against the standard library while
// also exposing the allocation-free append forms.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host the MSB (0x01).
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores integers big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// IsNetworkOrderNative reports whether the host byte order already matches
// the protocol's network byte order, meaning wire conversion is a no-op.
func IsNetworkOrderNative() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetNetworkEngine returns the engine for the protocol's network byte order.
//
// Network byte order is little-endian; every multi-byte integer written to
// the wire goes through this engine so the layout is bit-exact across
// hosts of either endianness.
func GetNetworkEngine() EndianEngine {
	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
