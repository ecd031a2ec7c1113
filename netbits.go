// Package netbits provides the compact binary-number primitives underlying
// a real-time client/server protocol's wire format.
//
// Higher-level packet serialization uses these pieces to pack integers of
// known range, wrapping sequence numbers, and signed deltas into the fewest
// possible bits and bytes, and to reverse the process on receipt with strict
// round-trip guarantees:
//
//   - bitpack: bit widths for ranged integers (popcount, floor log2)
//   - seqnum: wraparound-aware comparison of 16-bit sequence numbers
//   - zigzag: signed/unsigned folding for compressible deltas
//   - packetseq: truncation of 64-bit send sequences to minimal trailing bytes
//   - endian: host/network byte-order engines (network order is little-endian)
//   - digest: CRC-32 and xxHash64 for packet checksums and identifiers
//   - compress: optional block codecs for bulk payloads
//
// Every function here is a thin wrapper over those packages for the common
// per-packet calls; protocol code with more specific needs should use the
// subpackages directly. Everything is pure, allocation-free beyond fixed
// 8-byte buffers, and safe for concurrent use.
package netbits

import (
	"github.com/arloliu/netbits/bitpack"
	"github.com/arloliu/netbits/digest"
	"github.com/arloliu/netbits/packetseq"
	"github.com/arloliu/netbits/seqnum"
	"github.com/arloliu/netbits/zigzag"
)

// defaultCodec trusts the caller's reference exactly (no extra loss gap).
// Reliability layers with a known worst-case gap should build their own
// codec with packetseq.WithMaxGap.
var defaultCodec = &packetseq.Codec{}

// BitsRequired returns the number of bits needed to serialize an integer in
// the inclusive range [min, max]. It returns 0 when min == max and panics
// when min > max.
func BitsRequired(min, max uint32) int {
	return bitpack.BitsRequired(min, max)
}

// SequenceGreaterThan reports whether s1 is newer than s2 with 16-bit
// wraparound considered.
func SequenceGreaterThan(s1, s2 uint16) bool {
	return seqnum.GreaterThan(s1, s2)
}

// SequenceLessThan reports whether s1 is older than s2 with 16-bit
// wraparound considered.
func SequenceLessThan(s1, s2 uint16) bool {
	return seqnum.LessThan(s1, s2)
}

// SignedToUnsigned zig-zag encodes a signed value before bit-packing.
func SignedToUnsigned(n int32) uint32 {
	return zigzag.Encode32(n)
}

// UnsignedToSigned reverses SignedToUnsigned.
func UnsignedToSigned(u uint32) int32 {
	return zigzag.Decode32(u)
}

// CompressSequence shrinks a 64-bit send sequence to its minimal wire form
// relative to the sender's reference sequence.
func CompressSequence(sequence, reference uint64) packetseq.Compressed {
	return defaultCodec.Compress(sequence, reference)
}

// DecompressSequence reconstructs a full sequence from a prefix byte and
// trailing bytes, using the receiver's reference sequence to restore the
// truncated high-order bits.
func DecompressSequence(prefix byte, sequenceBytes []byte, reference uint64) (uint64, error) {
	return defaultCodec.Decompress(prefix, sequenceBytes, reference)
}

// PacketChecksum computes the CRC-32 a packet writer stamps over header and
// payload. Pass the result of a previous call as crc to extend a running
// checksum.
func PacketChecksum(crc uint32, data []byte) uint32 {
	return digest.CRC32(crc, data)
}
