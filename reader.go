package leftright

import "sync/atomic"

// Reader is an epoch-gated read handle bound to a single logical thread
// (goroutine). It is created by a ReaderFactory and lives for the
// lifetime of the primitive.
//
// A Reader must not be used from more than one goroutine at a time:
// concurrent use corrupts the epoch counter's parity, which is exactly
// the signal Writer.Refresh relies on to know when it's safe to mutate a
// retired copy. This package has no way to detect that misuse cheaply
// (the whole point of the epoch counter is to avoid synchronization on
// the read path), so it is a precondition violation, not a checked error.
type Reader[C any] struct {
	pub *atomic.Pointer[C]

	// epoch is even iff this Reader is not currently inside PerformRead,
	// odd iff it is (invariant I1). Incremented once on entry, once on
	// exit, regardless of whether the read closure panics.
	epoch atomic.Uint64
}

// PerformRead runs f against the current R-copy and returns its result.
// f must be pure with respect to c: it must not mutate c, must not
// retain c after PerformRead returns, and must not call back into this
// Reader or into the Writer it shares a primitive with — none of that is
// defined behavior.
//
// PerformRead never blocks and never takes a lock; it is wait-free on
// the fast path described in the package doc comment.
func (r *Reader[C]) PerformRead(f func(c C) any) any {
	r.epoch.Add(1) // enter: epoch becomes odd (release)
	defer r.epoch.Add(1) // leave: epoch becomes even (release), even if f panics

	c := r.pub.Load() // acquire: pairs with Writer.Refresh's release store
	return f(*c)
}
