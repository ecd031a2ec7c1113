// Package zigzag maps signed integers onto unsigned integers so that values
// of small magnitude, positive or negative, map to small unsigned codes.
//
//	 0 -> 0
//	-1 -> 1
//	 1 -> 2
//	-2 -> 3
//	 2 -> 4
//
// Serializing a signed field as its zig-zag code before bit-packing or
// varint-encoding keeps small deltas compact regardless of sign. Encode and
// Decode are exact inverses over the full signed domain.
package zigzag

// Encode32 converts a signed 32-bit integer to its zig-zag code.
func Encode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// Decode32 converts a zig-zag code back to the signed 32-bit integer.
func Decode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

// Encode64 converts a signed 64-bit integer to its zig-zag code.
func Encode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// Decode64 converts a zig-zag code back to the signed 64-bit integer.
func Decode64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
