package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePrefix(t *testing.T) {
	abc, err := FromString("ABC")
	require.NoError(t, err)
	abcd, err := FromString("ABCD")
	require.NoError(t, err)

	assert.Equal(t, -1, abc.CompareRegion(abcd))
	assert.Equal(t, 1, abcd.CompareRegion(abc))
	assert.Equal(t, 0, abc.CompareRegion(abc))
	assert.False(t, abc.EqualsRegion(abcd))
	assert.True(t, abc.Equals([]byte("ABC")))
}

func TestCompareNilRegionIsEmpty(t *testing.T) {
	abc, err := FromString("abc")
	require.NoError(t, err)
	empty, err := New(WithCapacity(0))
	require.NoError(t, err)

	assert.Equal(t, 1, abc.CompareRegion(nil))
	assert.False(t, abc.EqualsRegion(nil))
	assert.Equal(t, 0, empty.CompareRegion(nil))
	assert.True(t, empty.EqualsRegion(nil))
}

func TestCompareAntisymmetry(t *testing.T) {
	values := [][]byte{nil, []byte("a"), []byte("ab"), []byte("b"), {0xff}, {0x00}, []byte("ABC"), []byte("ABD")}

	for _, a := range values {
		ra, err := FromBytes(a)
		require.NoError(t, err)
		assert.Equal(t, 0, ra.Compare(a))

		for _, b := range values {
			rb, err := FromBytes(b)
			require.NoError(t, err)

			ab, ba := ra.CompareRegion(rb), rb.CompareRegion(ra)
			assert.Equal(t, ab == -1, ba == 1, "%q vs %q", a, b)
			assert.Equal(t, ab == 0, ba == 0, "%q vs %q", a, b)
		}
	}
}

func TestCompareIsUnsigned(t *testing.T) {
	r, err := FromBytes([]byte{0x80})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Compare([]byte{0x7f}))
}

func TestCompareRange(t *testing.T) {
	r, err := FromString("ABCDEF", WithCapacity(32), WithFill('Z'))
	require.NoError(t, err)
	other := []byte("xxCDx")

	assert.Equal(t, 0, r.CompareRange(other, 2, 4, 2, 4))
	assert.Equal(t, -1, r.CompareRange(other, 2, 5, 2, 4))
	assert.Equal(t, 1, r.CompareRange(other, 2, 4, 2, 5))

	// Clamped ranges behave like full ones; unused capacity is never compared.
	assert.Equal(t, r.Compare(other), r.CompareRange(other, -5, 1000, -5, 1000))
	assert.Equal(t, 0, r.CompareRange([]byte("ABCDEF"), 0, -1, 0, 1000))

	// Empty ranges.
	assert.Equal(t, 1, r.CompareRange(other, 3, 1, 0, -1))
	assert.Equal(t, -1, r.CompareRange(other, 0, -1, 4, 2))
	assert.Equal(t, 0, r.CompareRange(other, 3, 3, 6, 6))
}
