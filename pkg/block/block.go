// Package block is the fixed-capacity storage primitive under a region.
// A Block never grows; owners replace it wholesale when they need more room.
package block

// Block is a fixed-size run of bytes
type Block []byte

// Allocate returns a block of size bytes, every byte set to fill
func Allocate(size int, fill byte) Block {
	b := make(Block, size)
	if fill != 0 {
		b.Fill(fill, 0, size)
	}
	return b
}

// Len returns the block's size
func (b Block) Len() int {
	return len(b)
}

// Fill sets b[start:end] to v. The range must lie inside the block.
func (b Block) Fill(v byte, start, end int) {
	if start >= end {
		return
	}
	region := b[start:end]
	region[0] = v
	// Doubling copies touch each byte once.
	for filled := 1; filled < len(region); filled *= 2 {
		copy(region[filled:], region[:filled])
	}
}

// CopyInto copies b[start:end] into dst at dstOff and returns the number of
// bytes copied, which is short when dst runs out of room.
func (b Block) CopyInto(dst Block, start, end, dstOff int) int {
	if start >= end || dstOff >= len(dst) {
		return 0
	}
	return copy(dst[dstOff:], b[start:end])
}

// Slice returns a view of b[start:end] sharing the block's memory
func (b Block) Slice(start, end int) Block {
	return b[start:end:end]
}

// Clone returns a copy of b[start:end] that does not alias the block
func (b Block) Clone(start, end int) []byte {
	if start >= end {
		return []byte{}
	}
	out := make([]byte, end-start)
	copy(out, b[start:end])
	return out
}
