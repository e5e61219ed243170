/*
Copyright (C) 2020 Print Tracker, LLC - All Rights Reserved

Unauthorized copying of this file, via any medium is strictly prohibited
as this source code is proprietary and confidential. Dissemination of this
information or reproduction of this material is strictly forbidden unless
prior written permission is obtained from Print Tracker, LLC.
*/

// Package lrmap provides a read-optimized, key-value map built on top of
// package leftright. It does nothing the underlying primitive can't
// already do on its own — it's a thin façade that packages
// put/putIfAbsent/remove/removeIfEqual/clear as leftright.Operation
// values and forwards get/containsKey/size/isEmpty/containsValue/forEach
// to the reader or writer side, whichever the caller is holding.
package lrmap

import "github.com/leftright-go/leftright"

// Map is a generic hashmap that provides low-contention, concurrent
// access to its values: readers never block on the writer and the
// writer never blocks on readers. It does this by exposing exactly one
// Writer, eventually-consistent Readers, and the explicit Refresh
// operation that moves writes from the writer's view into every
// reader's view at once.
//
// Reads are wait-free on the fast path: a Reader never takes a lock to
// perform a read, it only increments a thread-local counter and follows
// an atomically-published pointer. Writes are always immediately visible
// to the Writer itself (the Writer's own Get/Size/ForEach/etc. see every
// prior Put/Remove/etc., even ones not yet refreshed) but are only visible to Readers
// after the next Refresh.
type Map[K comparable, V comparable] struct {
	factory *leftright.ReaderFactory[map[K]V]
	writer  *Writer[K, V]
	readers *goroutineReaders[K, V]
}

// New creates an empty Map.
func New[K comparable, V comparable](opts ...Option) *Map[K, V] {
	factory, w := leftright.New(func() map[K]V { return make(map[K]V) })

	var o options
	for _, fn := range opts {
		fn(&o)
	}

	writer := newWriter[K, V](w)
	writer.maxAutoRefresh = o.maxAutoRefresh

	return &Map[K, V]{
		factory: factory,
		writer:  writer,
		readers: newGoroutineReaders[K, V](factory),
	}
}

// Writer returns this Map's single Writer handle.
func (m *Map[K, V]) Writer() *Writer[K, V] {
	return m.writer
}

// NewReader creates a fresh Reader bound to the calling goroutine. The
// caller owns the returned handle and should keep it around rather than
// calling NewReader again on every read — each call registers a new
// Reader that lives for the lifetime of the Map.
func (m *Map[K, V]) NewReader() *Reader[K, V] {
	return newReader[K, V](m.factory.CreateReader())
}

// Reader returns a Reader bound to the calling goroutine, creating and
// caching one on first use. See goroutineReaders for the tradeoffs of
// this convenience versus calling NewReader yourself.
func (m *Map[K, V]) Reader() *Reader[K, V] {
	return m.readers.forCurrentGoroutine()
}
