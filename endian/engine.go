// Package endian provides byte order utilities for the RangeSeries binary codec.
//
// The RangeSeries wire format is big-endian by definition, while most hosts
// running this code are little-endian. This package combines the ByteOrder and
// AppendByteOrder interfaces from encoding/binary into a single EndianEngine
// interface, exposes a one-shot host byte order probe, and provides a
// Normalizer that swaps multi-byte scalars in place between wire order and
// host order.
//
// # Basic Usage
//
// Wire-side reads and writes use the big-endian engine:
//
//	engine := endian.Wire()
//	size := engine.Uint32(header[4:8])
//
// Host-side payload access, after a Normalizer fixup, uses the native engine:
//
//	engine := endian.Native()
//	value := engine.Uint32(payload[0:4])
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless, and a
// Normalizer is an immutable value.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// Wire returns the engine for the wire byte order, which is always big-endian.
func Wire() EndianEngine {
	return binary.BigEndian
}

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
