// Package digest provides the non-cryptographic checksums and hashes the
// protocol stamps onto packets and uses for fast identification.
//
// None of these functions are suitable for authentication; packets that need
// tamper resistance are protected by the encryption layer, not by a digest.
package digest

import (
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
)

// CRC32 updates the running CRC-32 (IEEE polynomial) with data and returns
// the new value.
//
// Pass 0 as crc to start a fresh checksum; pass a previous result to extend
// it, so CRC32(CRC32(0, a), b) equals the checksum of a followed by b.
// Packet writers use the running form to checksum header and payload
// without concatenating them.
func CRC32(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 digest of a string without copying it.
//
// Used to derive stable 64-bit identifiers from names (channels, message
// types) at setup time.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
