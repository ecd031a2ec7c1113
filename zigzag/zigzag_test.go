package zigzag

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode32_SpotValues(t *testing.T) {
	tests := []struct {
		signed   int32
		unsigned uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt32, 4294967294},
		{math.MinInt32, 4294967295},
	}

	for _, tt := range tests {
		require.Equal(t, tt.unsigned, Encode32(tt.signed), "encode %d", tt.signed)
		require.Equal(t, tt.signed, Decode32(tt.unsigned), "decode %d", tt.unsigned)
	}
}

func TestEncode32_RoundTrip(t *testing.T) {
	for n := int32(-100000); n <= 100000; n++ {
		require.Equal(t, n, Decode32(Encode32(n)))
	}

	boundary := []int32{math.MinInt32, math.MinInt32 + 1, math.MaxInt32 - 1, math.MaxInt32}
	for _, n := range boundary {
		require.Equal(t, n, Decode32(Encode32(n)))
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200000; i++ {
		n := int32(rng.Uint32())
		require.Equal(t, n, Decode32(Encode32(n)))
	}
}

func TestEncode32_SmallMagnitudesStaySmall(t *testing.T) {
	// The whole point of the fold: |n| <= 127 must fit one varint byte.
	for n := int32(-64); n <= 63; n++ {
		require.Less(t, Encode32(n), uint32(128), "n=%d", n)
	}
}

func TestEncode64_RoundTrip(t *testing.T) {
	spot := []int64{0, -1, 1, -2, 2, math.MinInt64, math.MinInt64 + 1, math.MaxInt64 - 1, math.MaxInt64}
	for _, n := range spot {
		require.Equal(t, n, Decode64(Encode64(n)))
	}
	require.Equal(t, uint64(0), Encode64(0))
	require.Equal(t, uint64(1), Encode64(-1))
	require.Equal(t, uint64(2), Encode64(1))

	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200000; i++ {
		n := int64(rng.Uint64())
		require.Equal(t, n, Decode64(Encode64(n)))
	}
}

func BenchmarkEncode32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode32(int32(i) - 500000)
	}
}
