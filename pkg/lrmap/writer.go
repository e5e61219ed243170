package lrmap

import "github.com/leftright-go/leftright"

// Writer is the single mutator of a Map. There is exactly one per Map,
// obtained from Map.Writer.
type Writer[K comparable, V comparable] struct {
	accessor[K, V]
	inner *leftright.Writer[map[K]V]

	// writesSinceRefresh and maxAutoRefresh implement the auto-refresh
	// write-lag policy from SPEC_FULL.md section D, carried forward from
	// the teacher's MaxReplicationWriteLag. maxAutoRefresh of zero (the
	// default) disables the policy entirely: refresh only ever happens
	// when the caller asks for it.
	writesSinceRefresh int
	maxAutoRefresh     int
}

func newWriter[K comparable, V comparable](inner *leftright.Writer[map[K]V]) *Writer[K, V] {
	return &Writer[K, V]{
		accessor: accessor[K, V]{perform: inner.Read},
		inner:    inner,
	}
}

// Put associates key with value, returning the previous value (if any).
func (w *Writer[K, V]) Put(key K, value V) (V, bool) {
	res := w.inner.Write(putOp[K, V](key, value)).(result[V])
	w.observeWrite()
	return res.value, res.ok
}

// PutIfAbsent associates key with value only if key is not already
// present, returning the existing value (if any) either way.
func (w *Writer[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	res := w.inner.Write(putIfAbsentOp[K, V](key, value)).(result[V])
	w.observeWrite()
	return res.value, res.ok
}

// Remove deletes key, returning its previous value (if any).
func (w *Writer[K, V]) Remove(key K) (V, bool) {
	res := w.inner.Write(removeOp[K, V](key)).(result[V])
	w.observeWrite()
	return res.value, res.ok
}

// RemoveIfEqual deletes key only if its current value equals value,
// reporting whether it did.
func (w *Writer[K, V]) RemoveIfEqual(key K, value V) bool {
	removed := w.inner.Write(removeIfEqualOp[K, V](key, value)).(bool)
	w.observeWrite()
	return removed
}

// Clear removes every entry.
func (w *Writer[K, V]) Clear() {
	w.inner.Write(clearOp[K, V]())
	w.observeWrite()
}

// Refresh publishes every write since the last refresh to all readers.
// See leftright.Writer.Refresh for the full protocol.
func (w *Writer[K, V]) Refresh() {
	w.inner.Refresh()
	w.writesSinceRefresh = 0
}

// WithRefresh runs fn with this Writer and then calls Refresh, even if
// fn panics. The scoped-release convenience from spec.md section 4.4.
func (w *Writer[K, V]) WithRefresh(fn func(w *Writer[K, V])) {
	defer w.Refresh()
	fn(w)
}

// observeWrite applies the auto-refresh write-lag policy: once more than
// maxAutoRefresh writes have accumulated since the last refresh, refresh
// automatically. Disabled (maxAutoRefresh == 0) by default.
func (w *Writer[K, V]) observeWrite() {
	w.writesSinceRefresh++
	if w.maxAutoRefresh > 0 && w.writesSinceRefresh > w.maxAutoRefresh {
		w.Refresh()
	}
}
