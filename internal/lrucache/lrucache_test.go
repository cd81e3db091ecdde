package lrucache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New[string, int](4, 0)

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestOverwriteRefreshesValue(t *testing.T) {
	c := New[string, int](4, 0)

	c.Set("a", 1)
	c.Set("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLeastRecentlyUsedEviction(t *testing.T) {
	c := New[string, int](2, 0)

	c.Set("a", 1)
	c.Set("b", 2)

	// touch a so that b becomes the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, int](4, time.Minute)

	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	c.Set("a", 1)

	current = current.Add(30 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	current = current.Add(31 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLNotRefreshedByGet(t *testing.T) {
	c := New[string, int](4, time.Minute)

	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	c.Set("a", 1)

	for i := 0; i < 3; i++ {
		current = current.Add(25 * time.Second)
		c.Get("a")
	}

	_, ok := c.Get("a")
	assert.False(t, ok, "expiry counts from the store, not the last use")
}

func TestDelete(t *testing.T) {
	c := New[string, int](4, 0)

	c.Set("a", 1)
	require.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 0, c.Len())

	// slot is reusable
	c.Set("b", 2)
	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestResizeEvictsOldest(t *testing.T) {
	c := New[string, int](4, 0)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Resize(1)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("c")
	assert.True(t, ok, "most recently used entry survives")
}

func TestManyEntriesKeepOrder(t *testing.T) {
	c := New[int, int](64, 0)

	for i := 0; i < 200; i++ {
		c.Set(i, i*10)
	}
	assert.Equal(t, 64, c.Len())

	for i := 136; i < 200; i++ {
		v, ok := c.Get(i)
		require.True(t, ok, "entry %d", i)
		assert.Equal(t, i*10, v)
	}
}
