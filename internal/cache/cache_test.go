package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set(SearchKey("zelda"), "payload", time.Minute)

	v, ok := c.Get(SearchKey("zelda"))
	assert.True(t, ok)
	assert.Equal(t, "payload", v)
}

func TestCache_AbsentVsStoredZero(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	_, ok := c.Get(SearchKey("missing"))
	assert.False(t, ok)

	// A stored empty value must still count as present.
	c.Set(SearchKey("empty"), "", time.Minute)
	v, ok := c.Get(SearchKey("empty"))
	assert.True(t, ok)
	assert.Equal(t, "", v)

	c.Set(DetailKey(42), false, time.Minute)
	v, ok = c.Get(DetailKey(42))
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set(SearchKey("short"), "v", 10*time.Millisecond)

	_, ok := c.Get(SearchKey("short"))
	assert.True(t, ok)

	time.Sleep(25 * time.Millisecond)

	_, ok = c.Get(SearchKey("short"))
	assert.False(t, ok)
}

func TestCache_JanitorSweepsExpired(t *testing.T) {
	c := New(10 * time.Millisecond)
	defer c.Close()

	c.Set(SearchKey("a"), 1, 5*time.Millisecond)
	c.Set(SearchKey("b"), 2, time.Minute)

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(SearchKey("b"))
	assert.True(t, ok)
}

func TestCache_KeysDoNotCollide(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	// Filter tuples that a naive string concatenation could conflate.
	c.Set(FilterKey("", 12, 0), "platform-12", time.Minute)
	c.Set(FilterKey("", 0, 12), "genre-12", time.Minute)
	c.Set(SearchKey("12"), "search-12", time.Minute)
	c.Set(DetailKey(12), true, time.Minute)

	v, _ := c.Get(FilterKey("", 12, 0))
	assert.Equal(t, "platform-12", v)
	v, _ = c.Get(FilterKey("", 0, 12))
	assert.Equal(t, "genre-12", v)
	v, _ = c.Get(SearchKey("12"))
	assert.Equal(t, "search-12", v)
	v, _ = c.Get(DetailKey(12))
	assert.Equal(t, true, v)
}
