package leftright

import "sync/atomic"

// ReaderFactory creates and registers Readers. It is safe to call from
// any goroutine at any time, including concurrently with Writer.Refresh.
type ReaderFactory[C any] struct {
	pub *atomic.Pointer[C]
	reg *registry[C]
}

// CreateReader allocates a new Reader bound to the publication pointer
// this factory was created with, registers it, and returns it. The
// returned Reader starts with epoch 0 (even: not inside a read) and
// immediately observes whichever copy is currently published.
func (f *ReaderFactory[C]) CreateReader() *Reader[C] {
	r := &Reader[C]{pub: f.pub}
	f.reg.register(r)
	return r
}
