package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateFills(t *testing.T) {
	b := Allocate(7, 0xaa)
	assert.Equal(t, 7, b.Len())
	for i, v := range b {
		assert.Equal(t, byte(0xaa), v, "index %d", i)
	}

	assert.Equal(t, Block{0, 0, 0}, Allocate(3, 0))
	assert.Equal(t, 0, Allocate(0, 1).Len())
}

func TestFillRange(t *testing.T) {
	b := Allocate(6, 0)
	b.Fill('x', 1, 4)
	assert.Equal(t, Block{0, 'x', 'x', 'x', 0, 0}, b)

	b.Fill('y', 3, 3)
	assert.Equal(t, Block{0, 'x', 'x', 'x', 0, 0}, b)
}

func TestCopyInto(t *testing.T) {
	src := Block("hello")
	dst := Allocate(4, '.')

	n := src.CopyInto(dst, 1, 5, 1)
	assert.Equal(t, 3, n)
	assert.Equal(t, Block(".ell"), dst)

	assert.Equal(t, 0, src.CopyInto(dst, 0, 5, 4))
	assert.Equal(t, 0, src.CopyInto(dst, 2, 2, 0))
}

func TestSliceSharesAndClonesDoNot(t *testing.T) {
	b := Block("abcdef")
	view := b.Slice(1, 3)
	c := b.Clone(1, 3)

	b[1] = 'Z'
	assert.Equal(t, Block("Zc"), view)
	assert.Equal(t, []byte("bc"), c)
	assert.Equal(t, 2, cap(view))
	assert.Equal(t, []byte{}, b.Clone(4, 2))
}
