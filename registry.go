package leftright

import "sync"

// registry is the shared, append-only set of Readers handed out by a
// ReaderFactory. It is consulted by Writer.Refresh to find stragglers and
// mutated by ReaderFactory.CreateReader when a new Reader is registered.
// Registration is rare relative to reads, so a plain mutex is enough —
// the teacher's own map.go reaches for the same primitive whenever it
// guards something a writer and a registrar can touch concurrently.
type registry[C any] struct {
	mu      sync.Mutex
	readers []*Reader[C]
}

// register atomically appends r to the registry. Once registered, a
// Reader is tracked for the lifetime of the primitive (invariant I5);
// this package never removes one.
func (reg *registry[C]) register(r *Reader[C]) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.readers = append(reg.readers, r)
}

// snapshot passes the registered readers as of the call to fn, holding
// the registry lock for the duration of fn. Used by Refresh to take a
// consistent view of the reader set before collecting stragglers,
// without allowing a new reader to be registered mid-snapshot.
func (reg *registry[C]) snapshot(fn func(readers []*Reader[C])) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	fn(reg.readers)
}
