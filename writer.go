package leftright

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/leftright-go/leftright/internal/oplog"
)

const messageConcurrentWriterAccess = "leftright: concurrent writer access detected"

// maxDrainBackoff caps the exponential backoff Refresh uses while waiting
// for straggler readers, matching the cap jwkohnen-lrmap's own
// waitForReaders uses.
const maxDrainBackoff = 5 * time.Second

// Writer is the single serialized mutator of a left-right primitive.
// Exactly one Writer is ever handed out for a given primitive (by
// New); there is no way to ask for a second one. Calling any Writer
// method from two goroutines at once is a precondition violation and
// panics rather than corrupting state silently, the same reentrancy
// guard used by erikfastermann-readerwriter's Writer.
type Writer[C any] struct {
	pub *atomic.Pointer[C]
	reg *registry[C]

	// rCopy is the writer's own bookkeeping of which physical copy is
	// currently published (the R-copy); wCopy is the other one, which
	// this Writer mutates. These swap identities on every Refresh.
	rCopy *C
	wCopy *C

	log *oplog.Log[C]

	guard sync.Mutex
}

func (w *Writer[C]) lock() {
	if !w.guard.TryLock() {
		panic(messageConcurrentWriterAccess)
	}
}

func (w *Writer[C]) unlock() {
	w.guard.Unlock()
}

// Write applies op to the W-copy, records it in the operation log, and
// returns op's result. Write never blocks on readers — readers are only
// ever looking at the R-copy, which Write never touches.
func (w *Writer[C]) Write(op Operation[C]) any {
	w.lock()
	defer w.unlock()
	return w.log.PushAndApply(op, *w.wCopy)
}

// Read runs f against the W-copy directly, so the writer always sees its
// own unrefreshed writes. This lets a caller perform a composite
// read-modify-write sequence (read a key, decide whether to write based
// on what it saw) without any extra synchronization, by design.
func (w *Writer[C]) Read(f func(c C) any) any {
	w.lock()
	defer w.unlock()
	return f(*w.wCopy)
}

// Refresh publishes every write accumulated since the last call to
// Refresh (or since construction) and resynchronizes the two copies.
// It implements the eight-step protocol from the primitive's design,
// listed here as seven steps because unlocking the registry and draining
// are described together as step 5:
//
//  1. Publish the W-copy into the publication pointer (release store).
//     New reads from this point on target the former W-copy.
//  2. Swap the writer's own labels: the former W-copy is now the
//     R-copy, the former R-copy is the new (stale) W-copy.
//  3. Lock the registry and snapshot the reader list, preventing a new
//     reader from registering mid-snapshot.
//  4. Record every reader whose epoch is odd — it may still be reading
//     the copy that was just retired.
//  5. Unlock the registry (new readers may now register; they can only
//     ever observe the copy published in step 1) and drain: repeatedly
//     reload each straggler's epoch until it differs from what was
//     observed, which proves that reader has left the retired copy.
//     Between passes it backs off with growing sleeps rather than
//     spinning, since a straggler that takes a while is exactly the
//     case spinning handles worst.
//  6. Replay the operation log, in order, against the new W-copy.
//  7. Clear the operation log.
//
// Refresh has no wall-clock timeout: a reader that never returns from
// PerformRead stalls Refresh forever. That is an accepted liveness
// hazard of this primitive, not a bug — the intended usage is short,
// non-blocking read closures.
func (w *Writer[C]) Refresh() {
	w.lock()
	defer w.unlock()

	w.pub.Store(w.wCopy) // step 1: publish (release)

	w.rCopy, w.wCopy = w.wCopy, w.rCopy // step 2: swap labels

	var stragglers map[*Reader[C]]uint64
	w.reg.snapshot(func(readers []*Reader[C]) { // steps 3-4
		stragglers = make(map[*Reader[C]]uint64, len(readers))
		for _, r := range readers {
			if e := r.epoch.Load(); e%2 == 1 {
				stragglers[r] = e
			}
		}
	})

	delay := time.Microsecond
	for len(stragglers) > 0 { // step 5: drain, registry unlocked
		for r, observed := range stragglers {
			if r.epoch.Load() != observed {
				delete(stragglers, r)
			}
		}
		if len(stragglers) == 0 {
			break
		}
		time.Sleep(delay)
		if delay < maxDrainBackoff {
			delay = min(delay*10, maxDrainBackoff)
		}
	}

	w.log.Apply(*w.wCopy) // step 6: replay
	w.log.Clear()         // step 7
}

// copies returns the current contents of both the R-copy and the
// W-copy. It exists only so tests can assert copy convergence (I4); it
// is not part of the public API.
func (w *Writer[C]) copies() (rCopy, wCopy C) {
	w.lock()
	defer w.unlock()
	return *w.rCopy, *w.wCopy
}

// WithRefresh runs fn with this Writer and then calls Refresh, even if
// fn panics. This is the scoped-release convenience: a thin ergonomic
// wrapper around the write-then-refresh pattern that doesn't change
// when or how refresh happens, only how often the caller has to
// remember to call it.
func (w *Writer[C]) WithRefresh(fn func(w *Writer[C])) {
	defer w.Refresh()
	fn(w)
}
