package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type str string

func (s str) Len() int { return len(s) }

func TestGetAndAdd(t *testing.T) {
	c := New(0, nil)
	c.Add("k1", str("1234"))

	v, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, str("1234"), v)

	_, ok = c.Get("k2")
	assert.False(t, ok)

	st := c.Stats()
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.Equal(t, int64(6), st.Bytes)
}

func TestEvictsOldest(t *testing.T) {
	var evicted []string
	c := New(int64(len("k1v1k2v2")), func(key string, _ Value) {
		evicted = append(evicted, key)
	})
	c.Add("k1", str("v1"))
	c.Add("k2", str("v2"))
	c.Get("k1") // k2 is now the oldest
	c.Add("k3", str("v3"))

	_, ok := c.Get("k2")
	assert.False(t, ok)
	assert.Equal(t, []string{"k2"}, evicted)
	assert.Equal(t, 2, c.Len())
}

func TestReplaceAdjustsBytes(t *testing.T) {
	c := New(0, nil)
	c.Add("k", str("ab"))
	c.Add("k", str("abcd"))
	assert.Equal(t, int64(5), c.Stats().Bytes)
	assert.Equal(t, 1, c.Len())
}

func TestOversizedEntrySkipped(t *testing.T) {
	c := New(4, nil)
	c.Add("key", str("value"))
	assert.Equal(t, 0, c.Len())
}

func TestDeleteAndClear(t *testing.T) {
	c := New(0, nil)
	c.Add("a", str("1"))
	c.Add("b", str("2"))

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Stats().Bytes)
}
