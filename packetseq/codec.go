// Package packetseq compresses 64-bit packet send sequences down to the
// minimum trailing bytes needed on the wire.
//
// A connection stamps every outgoing packet with a uint64 sequence number
// that increases by exactly one per packet. Sending all 8 bytes on every
// packet is wasteful: both ends track a recently accepted sequence, so only
// the low-order bytes that have changed relative to that reference need to
// travel. The wire form is a single prefix byte holding the trailing byte
// count (1 to 8), followed by exactly that many low-order bytes of the
// sequence in the protocol's little-endian network byte order. This layout
// is part of the wire format and must be bit-exact across implementations.
//
// The codec is stateless: the caller owns the reference sequence (typically
// the most recent acked or accepted sequence) and passes it in. All methods
// are safe for concurrent use.
package packetseq

import (
	"math/bits"

	"github.com/arloliu/netbits/endian"
	"github.com/arloliu/netbits/errs"
	"github.com/arloliu/netbits/format"
	"github.com/arloliu/netbits/internal/options"
)

// engine is the protocol's network byte order for the trailing bytes.
var engine = endian.GetNetworkEngine()

// Compressed is the transient wire representation of a packet sequence:
// one prefix byte and Count trailing bytes. It is created per packet by
// Codec.Compress and consumed immediately by the packet writer.
type Compressed struct {
	// Prefix encodes the trailing byte count so the decoder knows how many
	// bytes to read. Valid values are 1 through 8.
	Prefix byte
	// Count is the number of valid leading bytes in Bytes.
	Count int
	// Bytes holds the low-order bytes of the sequence in network byte order.
	Bytes [format.MaxSequenceBytes]byte
}

// Trailing returns the trailing sequence bytes to be written after the
// prefix byte. The returned slice aliases the Compressed value.
func (c *Compressed) Trailing() []byte {
	return c.Bytes[:c.Count]
}

// Codec compresses and decompresses packet sequences.
//
// The zero-configuration codec (NewCodec with no options) sizes the
// trailing bytes purely from the distance between the sequence and the
// sender's reference. A reliability layer that allows the receiver's
// reference to lag the sender's, through packet loss or reordering, must
// declare that worst-case gap with WithMaxGap so the byte count stays
// conservative enough for the decoder to disambiguate.
type Codec struct {
	maxGap uint64
}

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithMaxGap declares the maximum distance, in packets, between the
// reference the sender compresses against and the reference the receiver
// decompresses against. The byte count chosen by Compress always leaves
// room for this gap on top of the observed sequence distance.
//
// Returns errs.ErrSequenceGapTooLarge for a gap that cannot be
// disambiguated even with all 8 sequence bytes.
func WithMaxGap(gap uint64) Option {
	return options.New(func(c *Codec) error {
		if gap >= 1<<63 {
			return errs.ErrSequenceGapTooLarge
		}
		c.maxGap = gap

		return nil
	})
}

// NewCodec creates a packet sequence codec.
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compress shrinks sequence to the minimum trailing bytes that still
// round-trip against any reference within the configured gap of reference.
//
// The byte count is the smallest n in [1,8] such that the distance between
// sequence and reference, plus the configured maximum gap, stays below half
// of 2^(8n); the decoder resolves truncation by picking the candidate
// closest to its reference, so half the span is the disambiguation limit.
// Compressing the same sequence against the same reference always yields
// byte-identical output.
func (c *Codec) Compress(sequence, reference uint64) Compressed {
	n := c.sequenceByteCount(sequence, reference)

	var out Compressed
	out.Prefix = byte(n)
	out.Count = n

	var full [format.MaxSequenceBytes]byte
	engine.PutUint64(full[:], sequence)
	copy(out.Bytes[:n], full[:n])

	return out
}

// Append compresses sequence against reference and appends the wire form,
// prefix byte then trailing bytes, to dst.
func (c *Codec) Append(dst []byte, sequence, reference uint64) []byte {
	compressed := c.Compress(sequence, reference)
	dst = append(dst, compressed.Prefix)

	return append(dst, compressed.Trailing()...)
}

// Decompress reconstructs a full sequence from its wire form.
//
// The trailing bytes supply the low-order bits; the high-order bits come
// from reference by choosing, among the candidate full values consistent
// with the low bits, the one numerically closest to reference. This is the
// same resolution rule modular sequence-number wraparound uses.
//
// Returns errs.ErrInvalidPrefixByte for a prefix outside [1,8] and
// errs.ErrShortSequenceBytes when sequenceBytes holds fewer bytes than the
// prefix announces. Both indicate a corrupt or malicious packet; the caller
// should discard it.
func (c *Codec) Decompress(prefix byte, sequenceBytes []byte, reference uint64) (uint64, error) {
	n, err := SequenceBytes(prefix)
	if err != nil {
		return 0, err
	}
	if len(sequenceBytes) < n {
		return 0, errs.ErrShortSequenceBytes
	}

	var full [format.MaxSequenceBytes]byte
	copy(full[:n], sequenceBytes[:n])
	low := engine.Uint64(full[:])

	if n == format.MaxSequenceBytes {
		return low, nil
	}

	// The low bytes pin the sequence within an epoch of span 2^(8n).
	// Candidates are the value in the reference's epoch and its neighbors;
	// the one closest to the reference wins. Wrapping candidates land far
	// from any in-range reference and are never selected.
	span := uint64(1) << (8 * n)
	epoch := reference &^ (span - 1)
	candidate := epoch | low

	return closestTo(reference, candidate, closestTo(reference, candidate-span, candidate+span)), nil
}

// Decode reads a compressed sequence from the leading bytes of buf,
// returning the reconstructed sequence and the number of bytes consumed.
//
// This is the form packet header parsers use: the prefix byte is buf[0]
// and the trailing bytes follow immediately.
func (c *Codec) Decode(buf []byte, reference uint64) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, errs.ErrShortSequenceBytes
	}

	sequence, err := c.Decompress(buf[0], buf[1:], reference)
	if err != nil {
		return 0, 0, err
	}

	return sequence, 1 + int(buf[0]), nil
}

// SequenceBytes returns the trailing byte count encoded in a prefix byte.
//
// Returns errs.ErrInvalidPrefixByte for values outside [1,8]; a byte count
// of 0 is invalid because every sequence needs at least one byte.
func SequenceBytes(prefix byte) (int, error) {
	if prefix < 1 || prefix > format.MaxSequenceBytes {
		return 0, errs.ErrInvalidPrefixByte
	}

	return int(prefix), nil
}

// sequenceByteCount picks the smallest byte count whose half-span exceeds
// the observed distance plus the configured worst-case gap. Distances at or
// beyond 2^63 saturate to the full 8 bytes, which always round-trips since
// the complete sequence is on the wire.
func (c *Codec) sequenceByteCount(sequence, reference uint64) int {
	need := delta(sequence, reference)
	if c.maxGap > ^uint64(0)-need {
		return format.MaxSequenceBytes
	}
	need += c.maxGap

	// need < 2^(8n-1) is equivalent to bits.Len64(need) <= 8n-1.
	n := (bits.Len64(need) + 8) / 8
	if n < 1 {
		return 1
	}
	if n > format.MaxSequenceBytes {
		return format.MaxSequenceBytes
	}

	return n
}

func closestTo(target, a, b uint64) uint64 {
	if delta(target, a) < delta(target, b) {
		return a
	}

	return b
}

func delta(a, b uint64) uint64 {
	if a < b {
		return b - a
	}

	return a - b
}
