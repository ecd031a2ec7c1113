// Package compress provides the optional block codecs applied to bulk
// packet payloads.
//
// Per-packet headers and sequence numbers are already compact and never go
// through these codecs; they exist for the protocol's large transfers such
// as connect data and fragmented bulk messages, where a payload block is
// compressed once before fragmentation and decompressed after reassembly.
package compress

import (
	"fmt"

	"github.com/arloliu/netbits/errs"
	"github.com/arloliu/netbits/format"
)

// Compressor compresses a complete payload block.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified. Internal buffers may be reused across
	// calls for efficiency.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a payload block produced by the matching
// Compressor.
//
// Implementations must treat the input as untrusted network data: corrupted
// or mismatched input is reported as an error, never a panic.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory that creates a Codec for the given compression
// type. The target string names the caller's usage and appears in error
// messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s for %s", errs.ErrInvalidCompressionType, compressionType, target)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the given compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
