// Package bitpack provides the bit-width arithmetic used to size ranged
// integer fields in a bit-packed wire format.
//
// All functions are pure, allocation-free, and safe for concurrent use.
// Calls with constant arguments are inlined and folded by the compiler, so a
// field width declared once at package scope
//
//	var clientIndexBits = bitpack.BitsRequired(0, maxClients-1)
//
// costs nothing on the hot path while staying identical to the run-time form.
package bitpack

import "math/bits"

// PopCount returns the number of bits set to 1 in x.
//
// Valid for every uint32 input: PopCount(0) == 0 and
// PopCount(0xFFFFFFFF) == 32.
func PopCount(x uint32) int {
	return bits.OnesCount32(x)
}

// Log2 returns the floor of the base-2 logarithm of x.
//
// The result is undefined for x == 0; callers must not pass 0.
func Log2(x uint32) int {
	return bits.Len32(x) - 1
}

// BitsRequired returns the number of bits needed to serialize any integer in
// the inclusive range [min, max].
//
// A degenerate range (min == max) needs 0 bits since the value is a known
// constant. Otherwise the result is floor(log2(max-min)) + 1, up to 32 bits
// for the full uint32 span. The arithmetic cannot overflow for any valid
// input.
//
// Passing min > max is a programmer error and panics.
func BitsRequired(min, max uint32) int {
	if min > max {
		panic("bitpack: BitsRequired called with min > max")
	}
	if min == max {
		return 0
	}

	return Log2(max-min) + 1
}

// BitsRequired64 is the 64-bit variant of BitsRequired, for wide fields such
// as full packet sequence numbers.
//
// Passing min > max is a programmer error and panics.
func BitsRequired64(min, max uint64) int {
	if min > max {
		panic("bitpack: BitsRequired64 called with min > max")
	}
	if min == max {
		return 0
	}

	return bits.Len64(max - min)
}

// popCountPortable is the bit-halving population count from Hacker's Delight.
// It must agree with PopCount for every input; the test suite asserts this.
func popCountPortable(x uint32) int {
	a := x - ((x >> 1) & 0x55555555)
	b := ((a >> 2) & 0x33333333) + (a & 0x33333333)
	c := ((b >> 4) + b) & 0x0f0f0f0f
	d := c + (c >> 8)
	e := d + (d >> 16)

	return int(e & 0x0000003f)
}

// log2Portable is the fill-then-count floor log2 built on popCountPortable.
// It must agree with Log2 for every x > 0; the test suite asserts this.
func log2Portable(x uint32) int {
	a := x | (x >> 1)
	b := a | (a >> 2)
	c := b | (b >> 4)
	d := c | (c >> 8)
	e := d | (d >> 16)

	return popCountPortable(e >> 1)
}
