package region

import (
	"bytes"
)

// CompareRange compares region bytes [sourceStart, sourceEnd) with other
// bytes [targetStart, targetEnd) as unsigned byte strings and returns -1, 0
// or 1. Both ranges are clamped like ToBytes ranges; a negative end means the
// end of that side. A range that is a strict prefix of the other sorts first.
func (r *Region) CompareRange(other []byte, targetStart, targetEnd, sourceStart, sourceEnd int) int {
	ts, te := clampRange(len(other), targetStart, targetEnd)
	ss, se := r.clamp(sourceStart, sourceEnd)
	if te < ts {
		te = ts
	}
	if se < ss {
		se = ss
	}
	return bytes.Compare(r.storage[ss:se], other[ts:te])
}

// Compare compares all used bytes with all of other
func (r *Region) Compare(other []byte) int {
	return r.CompareRange(other, 0, -1, 0, -1)
}

// Equals reports whether the used bytes equal other
func (r *Region) Equals(other []byte) bool {
	return r.Compare(other) == 0
}

// CompareRegion compares the used bytes of two regions. A nil region is empty.
func (r *Region) CompareRegion(o *Region) int {
	if o == nil {
		return r.Compare(nil)
	}
	return r.Compare(o.Bytes())
}

// EqualsRegion reports whether two regions hold the same used bytes
func (r *Region) EqualsRegion(o *Region) bool {
	return r.CompareRegion(o) == 0
}
