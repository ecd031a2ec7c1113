// Package seqnum compares 16-bit wrapping sequence numbers.
//
// A 16-bit sequence number wraps back to zero after 65535, so ordinary
// integer comparison misorders values on opposite sides of the wrap.
// GreaterThan and LessThan recover the true ordering under the assumption
// that the two values being compared are never more than half the domain
// (32768) apart in true elapsed order. When that assumption is violated the
// answer is meaningless; that is an accepted limitation of modulo
// arithmetic, not an error.
package seqnum

// GreaterThan reports whether s1 is newer than s2 with wraparound
// considered.
//
// This is not the same as s1 > s2: GreaterThan(1, 0) is true, and so is
// GreaterThan(0, 65535). When s1 - s2 is exactly 32768 modulo 65536 the
// result is true, whichever operand is numerically larger, so the relation
// is not a total order at the exact half-domain boundary. Downstream
// protocol logic depends on this exact boundary convention.
func GreaterThan(s1, s2 uint16) bool {
	return ((s1 > s2) && (s1-s2 <= 32768)) ||
		((s1 < s2) && (s2-s1 >= 32768))
}

// LessThan reports whether s1 is older than s2 with wraparound considered.
//
// This is not the same as s1 < s2: LessThan(0, 1) is true, and so is
// LessThan(65535, 0).
func LessThan(s1, s2 uint16) bool {
	return GreaterThan(s2, s1)
}

// Diff returns the signed shortest distance from s2 to s1 under the same
// wraparound convention: positive when GreaterThan(s1, s2), negative when
// only LessThan(s1, s2), and zero when equal. At the exact half-domain
// boundary the distance is reported as +32768 in either direction.
//
// Reliability layers use this to size ack windows and detect how far ahead
// a newly accepted sequence number jumped.
func Diff(s1, s2 uint16) int {
	d := int(s1) - int(s2)
	switch {
	case d <= -32768:
		return d + 65536
	case d > 32768:
		return d - 65536
	default:
		return d
	}
}
