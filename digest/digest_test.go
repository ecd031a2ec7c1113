package digest

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC32_KnownValue(t *testing.T) {
	// Standard CRC-32/IEEE check value.
	require.Equal(t, uint32(0xCBF43926), CRC32(0, []byte("123456789")))
	require.Equal(t, uint32(0), CRC32(0, nil))
}

func TestCRC32_RunningProperty(t *testing.T) {
	a := []byte("packet header bytes")
	b := []byte("and the payload that follows")

	whole := CRC32(0, append(append([]byte{}, a...), b...))
	split := CRC32(CRC32(0, a), b)
	require.Equal(t, whole, split)
	require.Equal(t, crc32.ChecksumIEEE(append(append([]byte{}, a...), b...)), whole)
}

func TestSum64(t *testing.T) {
	data := []byte("reliable.ordered.channel")

	require.Equal(t, Sum64(data), Sum64String(string(data)))
	require.NotEqual(t, Sum64(data), Sum64([]byte("reliable.ordered.channel2")))

	// Stable across calls: these digests identify wire entities.
	require.Equal(t, Sum64String("x"), Sum64String("x"))
}

func BenchmarkCRC32(b *testing.B) {
	data := make([]byte, 1200)
	for i := 0; i < b.N; i++ {
		_ = CRC32(0, data)
	}
}
