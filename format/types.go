// Package format defines the wire-level constants and type enums shared by
// the netbits packages.
package format

// CompressionType identifies the block compression applied to a bulk payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

const (
	// MaxSequenceBytes is the maximum number of trailing bytes a compressed
	// packet sequence occupies on the wire.
	MaxSequenceBytes = 8

	// HalfSequenceDomain is half of the 16-bit sequence number space. Two
	// sequence numbers farther apart than this in true order cannot be
	// compared meaningfully.
	HalfSequenceDomain = 32768
)
