package compress

// ZstdCompressor compresses payload blocks with Zstandard, for transfers
// where ratio matters more than speed: connect data shipped once per
// connection, or bulk messages sent over constrained links.
//
// Two implementations back this type, selected at build time: the cgo build
// binds the reference libzstd through gozstd, and the pure-Go build uses
// klauspost/compress so the library stays portable to platforms without
// cgo. Both produce interoperable zstd frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
