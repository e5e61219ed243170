package leftright

import (
	"sync/atomic"

	"github.com/leftright-go/leftright/internal/oplog"
)

// New creates a left-right primitive over containers produced by
// factory, which is called exactly twice (once for each copy) and
// should return an empty container each time. It returns a
// ReaderFactory for minting Readers and the single Writer for this
// primitive — there is no way to obtain a second Writer for the same
// pair of copies.
func New[C any](factory func() C) (*ReaderFactory[C], *Writer[C]) {
	left := factory()
	right := factory()

	pub := &atomic.Pointer[C]{}
	pub.Store(&left)

	reg := &registry[C]{}

	rf := &ReaderFactory[C]{pub: pub, reg: reg}
	w := &Writer[C]{
		pub:   pub,
		reg:   reg,
		rCopy: &left,
		wCopy: &right,
		log:   oplog.NewLog[C](),
	}
	return rf, w
}
