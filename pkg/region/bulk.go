package region

import (
	"github.com/AdrianWangs/go-buffer/pkg/block"
)

// Fill sets the used bytes [start, end) to v. The range must lie inside
// [0, Len()).
func (r *Region) Fill(v byte, start, end int) error {
	if start < 0 || end > r.used || start > end {
		return newError(KindRange, "fill", "range [%d, %d) outside [0, %d)", start, end, r.used)
	}
	r.storage.Fill(v, start, end)
	return nil
}

// SetBytes overwrites used bytes starting at off with p. Unlike WriteBytesAt
// it never grows the region or changes Len().
func (r *Region) SetBytes(p []byte, off int) error {
	if off < 0 || off > r.used || len(p) > r.used-off {
		return newError(KindRange, "set", "%d bytes at %d outside [0, %d)", len(p), off, r.used)
	}
	copy(r.storage[off:], p)
	return nil
}

// Truncate drops all but the first n used bytes. Capacity is kept.
func (r *Region) Truncate(n int) error {
	if n < 0 || n > r.used {
		return newError(KindRange, "truncate", "length %d outside [0, %d]", n, r.used)
	}
	r.setUsed(n)
	return nil
}

// Reset empties the region, keeping its capacity
func (r *Region) Reset() {
	r.setUsed(0)
}

// Clone returns an independent region with the same content, capacity and settings
func (r *Region) Clone() *Region {
	c := *r
	c.storage = nil
	if len(r.storage) > 0 {
		c.storage = block.Allocate(len(r.storage), r.fill)
		r.storage.CopyInto(c.storage, 0, r.used, 0)
	}
	return &c
}
