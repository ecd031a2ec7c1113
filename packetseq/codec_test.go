package packetseq

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/netbits/errs"
)

func newCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	codec, err := NewCodec(opts...)
	require.NoError(t, err)

	return codec
}

func TestCompress_SmallDelta(t *testing.T) {
	codec := newCodec(t)

	compressed := codec.Compress(1005, 1000)
	require.Equal(t, byte(1), compressed.Prefix)
	require.Equal(t, 1, compressed.Count)
	require.Equal(t, []byte{0xED}, compressed.Trailing()) // 1005 & 0xFF

	sequence, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), 1000)
	require.NoError(t, err)
	require.Equal(t, uint64(1005), sequence)
}

func TestCompress_TwoByteDelta(t *testing.T) {
	codec := newCodec(t)

	compressed := codec.Compress(300, 0)
	require.Equal(t, byte(2), compressed.Prefix)
	require.Equal(t, 2, compressed.Count)
	require.Equal(t, []byte{0x2C, 0x01}, compressed.Trailing()) // 300 little-endian

	sequence, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(300), sequence)
}

func TestCompress_WireLayout(t *testing.T) {
	codec := newCodec(t)

	// Prefix byte then exactly Count little-endian low bytes; this layout
	// is part of the wire format and must not drift.
	buf := codec.Append(nil, 0x0102030405, 0x0102030000)
	require.Equal(t, []byte{0x2, 0x05, 0x04}, buf)

	sequence, consumed, err := codec.Decode(buf, 0x0102030000)
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.Equal(t, uint64(0x0102030405), sequence)
}

func TestCompress_Stability(t *testing.T) {
	codec := newCodec(t)

	first := codec.Compress(987654321, 987654000)
	second := codec.Compress(987654321, 987654000)
	require.Equal(t, first, second)
	require.Equal(t, first.Trailing(), second.Trailing())
}

func TestCompress_FullWidth(t *testing.T) {
	codec := newCodec(t)

	compressed := codec.Compress(math.MaxUint64-5, 0)
	require.Equal(t, byte(8), compressed.Prefix)

	sequence, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), 0)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64-5), sequence)
}

func TestDecompress_AcrossEpochBoundary(t *testing.T) {
	codec := newCodec(t)

	// Sequence and reference straddle a 256 boundary in both directions.
	tests := []struct {
		sequence  uint64
		reference uint64
	}{
		{256, 255},
		{255, 256},
		{65536, 65535},
		{65535, 65536},
		{1 << 32, (1 << 32) - 1},
		{(1 << 32) - 1, 1 << 32},
		{0, 1},
		{1, 0},
	}

	for _, tt := range tests {
		compressed := codec.Compress(tt.sequence, tt.reference)
		got, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), tt.reference)
		require.NoError(t, err)
		require.Equal(t, tt.sequence, got, "sequence=%d reference=%d", tt.sequence, tt.reference)
	}
}

func TestDecompress_RandomRoundTrip(t *testing.T) {
	codec := newCodec(t)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200000; i++ {
		reference := rng.Uint64()
		gap := rng.Uint64() >> uint(rng.Intn(64))
		sequence := reference + gap
		if rng.Intn(2) == 0 && reference >= gap {
			sequence = reference - gap
		}

		compressed := codec.Compress(sequence, reference)
		got, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), reference)
		require.NoError(t, err)
		require.Equal(t, sequence, got, "sequence=%d reference=%d count=%d", sequence, reference, compressed.Count)
	}
}

func TestDecompress_WithReferenceSkew(t *testing.T) {
	const maxGap = 1000
	codec := newCodec(t, WithMaxGap(maxGap))
	rng := rand.New(rand.NewSource(100))

	for i := 0; i < 100000; i++ {
		senderRef := rng.Uint64()>>1 + maxGap
		sequence := senderRef + uint64(rng.Intn(5000))

		// The receiver's reference lags or leads the sender's by up to the
		// declared gap; decoding must still be exact.
		receiverRef := senderRef - maxGap + uint64(rng.Intn(2*maxGap+1))

		compressed := codec.Compress(sequence, senderRef)
		got, err := codec.Decompress(compressed.Prefix, compressed.Trailing(), receiverRef)
		require.NoError(t, err)
		require.Equal(t, sequence, got, "sequence=%d senderRef=%d receiverRef=%d", sequence, senderRef, receiverRef)
	}
}

func TestCompress_MaxGapWidensByteCount(t *testing.T) {
	// A 5-packet delta fits one byte on its own, but a declared loss gap
	// of 200 forces a second byte.
	strict := newCodec(t)
	require.Equal(t, 1, strict.Compress(1005, 1000).Count)

	loose := newCodec(t, WithMaxGap(200))
	require.Equal(t, 2, loose.Compress(1005, 1000).Count)
}

func TestWithMaxGap_TooLarge(t *testing.T) {
	_, err := NewCodec(WithMaxGap(1 << 63))
	require.ErrorIs(t, err, errs.ErrSequenceGapTooLarge)
}

func TestSequenceBytes(t *testing.T) {
	for prefix := byte(1); prefix <= 8; prefix++ {
		n, err := SequenceBytes(prefix)
		require.NoError(t, err)
		require.Equal(t, int(prefix), n)
	}

	for _, prefix := range []byte{0, 9, 42, 255} {
		_, err := SequenceBytes(prefix)
		require.ErrorIs(t, err, errs.ErrInvalidPrefixByte, "prefix=%d", prefix)
	}
}

func TestDecompress_MalformedInput(t *testing.T) {
	codec := newCodec(t)

	_, err := codec.Decompress(0, nil, 100)
	require.ErrorIs(t, err, errs.ErrInvalidPrefixByte)

	_, err = codec.Decompress(9, make([]byte, 9), 100)
	require.ErrorIs(t, err, errs.ErrInvalidPrefixByte)

	_, err = codec.Decompress(4, []byte{1, 2, 3}, 100)
	require.ErrorIs(t, err, errs.ErrShortSequenceBytes)

	_, _, err = codec.Decode(nil, 100)
	require.ErrorIs(t, err, errs.ErrShortSequenceBytes)

	_, _, err = codec.Decode([]byte{3, 0xAA}, 100)
	require.ErrorIs(t, err, errs.ErrShortSequenceBytes)
}

func BenchmarkCompress(b *testing.B) {
	codec := &Codec{}
	for i := uint64(0); i < uint64(b.N); i++ {
		_ = codec.Compress(1000000+i, 1000000)
	}
}

func BenchmarkDecompress(b *testing.B) {
	codec := &Codec{}
	compressed := codec.Compress(1000123, 1000000)
	for i := 0; i < b.N; i++ {
		_, _ = codec.Decompress(compressed.Prefix, compressed.Trailing(), 1000000)
	}
}
