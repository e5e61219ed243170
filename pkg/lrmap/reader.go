package lrmap

import "github.com/leftright-go/leftright"

// Reader is a read-only, epoch-gated handle onto a Map, bound to a
// single goroutine. Obtain one with Map.NewReader or Map.Reader.
type Reader[K comparable, V comparable] struct {
	accessor[K, V]
	inner *leftright.Reader[map[K]V]
}

func newReader[K comparable, V comparable](inner *leftright.Reader[map[K]V]) *Reader[K, V] {
	return &Reader[K, V]{
		accessor: accessor[K, V]{perform: inner.PerformRead},
		inner:    inner,
	}
}
