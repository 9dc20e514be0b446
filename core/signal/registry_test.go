package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.add("b")
		r.add("c")
		assert.Equal(t, []string{"a", "b", "c"}, r.subscribers)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.add("a")
		assert.Equal(t, []string{"a"}, r.subscribers)
	})

	t.Run("add does not upgrade an existing once subscription", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.addOnce("a")
		r.add("a")
		assert.True(t, r.isOnce("a"))
		assert.Equal(t, 1, r.len())
	})

	t.Run("addOnce marks", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.addOnce("a")
		r.addOnce("a")
		assert.Equal(t, []string{"a"}, r.subscribers)
		assert.True(t, r.isOnce("a"))
	})

	t.Run("addOnce of a persistent subscription is a no-op", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.addOnce("a")
		assert.False(t, r.isOnce("a"))
	})
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	t.Run("immediate when idle", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.addOnce("b")
		r.add("c")

		r.remove("b")
		assert.Equal(t, []string{"a", "c"}, r.subscribers)
		assert.False(t, r.isOnce("b"))
		assert.Empty(t, r.pending)
	})

	t.Run("unknown is a no-op", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.remove("z")
		assert.Equal(t, []string{"a"}, r.subscribers)
	})

	t.Run("deferred while dispatching", func(t *testing.T) {
		t.Parallel()
		var r registry[string]
		r.add("a")
		r.add("b")

		count, _ := r.beginDispatch()
		require.Equal(t, 2, count)

		r.remove("a")
		assert.Equal(t, []string{"a", "b"}, r.subscribers, "live list must not change mid-dispatch")
		assert.Equal(t, []string{"a"}, r.pending)

		r.postDispatch()
		assert.Equal(t, []string{"b"}, r.subscribers)
		assert.Empty(t, r.pending)
		assert.False(t, r.dispatching)
	})
}

func TestRegistry_RemoveAll(t *testing.T) {
	t.Parallel()

	var r registry[string]
	r.add("a")
	r.addOnce("b")

	_, gen := r.beginDispatch()
	r.remove("a")
	r.removeAll()

	assert.Zero(t, r.len())
	assert.Empty(t, r.once)
	assert.Empty(t, r.pending)

	_, ok := r.at(0, gen)
	assert.False(t, ok, "walk must stop after a hard reset")

	r.postDispatch()
	assert.False(t, r.dispatching)
}

func TestRegistry_Fired(t *testing.T) {
	t.Parallel()

	var r registry[string]
	r.add("a")
	r.addOnce("b")

	count, gen := r.beginDispatch()
	for i := range count {
		c, ok := r.at(i, gen)
		require.True(t, ok)
		r.fired(c)
	}
	assert.Equal(t, []string{"b"}, r.pending)

	r.postDispatch()
	assert.Equal(t, []string{"a"}, r.subscribers)
	assert.False(t, r.isOnce("b"))
}

func TestRegistry_OnceMarksAreSubscribed(t *testing.T) {
	t.Parallel()

	var r registry[int]
	for i := range 10 {
		if i%2 == 0 {
			r.addOnce(i)
		} else {
			r.add(i)
		}
	}
	r.remove(4)
	r.remove(5)

	for c := range r.once {
		assert.True(t, r.has(c), "once mark %d without subscription", c)
	}
	assert.Equal(t, 8, r.len())
}
