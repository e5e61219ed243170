package lrmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMap mirrors the teacher's own map_test.go subtest shape
// (Insert/Refresh/Delete/has&get/Clear), adapted to the Writer/Reader
// split this package uses instead of a single god-object Map.
func TestMap(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()

	t.Run("Put", func(t *testing.T) {
		w.Put("foo", 1)
		w.Put("bar", 2)

		// The writer sees both keys immediately...
		assert.Equal(t, 2, w.Size())
		// ...but no reader does, because nothing has been refreshed yet.
		assert.Equal(t, 0, m.Reader().Size())
	})

	t.Run("Refresh", func(t *testing.T) {
		w.Refresh()

		assert.Equal(t, 2, m.Reader().Size())
		assert.Equal(t, 2, w.Size())
	})

	t.Run("Remove", func(t *testing.T) {
		prev, ok := w.Remove("foo")
		assert.True(t, ok)
		assert.Equal(t, 1, prev)

		// Readers haven't seen this change yet.
		assert.Equal(t, 2, m.Reader().Size())
		// But the writer has.
		assert.Equal(t, 1, w.Size())
	})

	t.Run("Get and ContainsKey", func(t *testing.T) {
		reader := m.NewReader()
		v, ok := reader.Get("foo")
		assert.True(t, ok, "reader hasn't seen the removal yet")
		assert.Equal(t, 1, v)
		assert.True(t, reader.ContainsKey("foo"))

		w.Refresh()

		v, ok = reader.Get("foo")
		assert.False(t, ok, "reader should see the removal now")
		assert.Zero(t, v)
		assert.False(t, reader.ContainsKey("foo"))
	})

	t.Run("Clear", func(t *testing.T) {
		w.Clear()

		assert.Equal(t, 1, m.Reader().Size(), "reader shouldn't see the clear yet")
		assert.Equal(t, 0, w.Size(), "writer should have seen the clear")

		w.Refresh()

		assert.Equal(t, 0, m.Reader().Size())
	})
}

func TestMap_PutIfAbsent(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()

	prev, ok := w.PutIfAbsent("a", 1)
	assert.False(t, ok)
	assert.Zero(t, prev)

	prev, ok = w.PutIfAbsent("a", 2)
	assert.True(t, ok, "a was already present")
	assert.Equal(t, 1, prev, "existing value should be reported")

	w.Refresh()
	v, _ := m.Reader().Get("a")
	assert.Equal(t, 1, v, "put-if-absent must not overwrite an existing key")
}

func TestMap_RemoveIfEqual(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	w.Put("a", 1)

	assert.False(t, w.RemoveIfEqual("a", 2), "value doesn't match, nothing removed")
	assert.True(t, w.RemoveIfEqual("a", 1), "value matches, key removed")
	assert.False(t, w.ContainsKey("a"))
}

func TestMap_ContainsValue(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	w.Put("a", 1)

	assert.True(t, w.ContainsValue(1))
	assert.False(t, w.ContainsValue(2))
}

func TestMap_GetOrDefault(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	w.Refresh()

	assert.Equal(t, 42, m.Reader().GetOrDefault("missing", 42))

	w.Put("present", 7)
	w.Refresh()
	assert.Equal(t, 7, m.Reader().GetOrDefault("present", 42))
}

func TestMap_IsEmpty(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	assert.True(t, w.IsEmpty())

	w.Put("a", 1)
	assert.False(t, w.IsEmpty())
}

func TestMap_ForEach(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	w.Put("a", 1)
	w.Put("b", 2)
	w.Refresh()

	seen := map[string]int{}
	m.Reader().ForEach(func(k string, v int) {
		seen[k] = v
	})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, seen)
}

func TestMap_WithRefresh(t *testing.T) {
	m := New[string, int]()
	w := m.Writer()
	reader := m.NewReader()

	w.WithRefresh(func(w *Writer[string, int]) {
		w.Put("a", 1)
		_, ok := reader.Get("a")
		assert.False(t, ok, "reader shouldn't see the write before the scope ends")
	})

	v, ok := reader.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMap_ReaderIsCachedPerGoroutine(t *testing.T) {
	m := New[string, int]()
	r1 := m.Reader()
	r2 := m.Reader()
	assert.Same(t, r1, r2, "Reader() should return the same cached handle within one goroutine")
}

func TestWithAutoRefreshAfter(t *testing.T) {
	m := New[string, int](WithAutoRefreshAfter(2))
	w := m.Writer()
	reader := m.NewReader()

	w.Put("a", 1)
	w.Put("b", 2)
	_, ok := reader.Get("a")
	assert.False(t, ok, "auto-refresh threshold not yet crossed")

	w.Put("c", 3) // third write crosses the threshold of 2

	_, ok = reader.Get("a")
	assert.True(t, ok, "auto-refresh should have fired on the third write")
}
