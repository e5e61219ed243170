package lrmap

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"

	"github.com/leftright-go/leftright"
)

// goroutineReaders lazily creates and caches one Reader per calling
// goroutine, so callers that don't want to thread a *Reader[K,V] through
// their own call stack can just ask the Map for "the reader for whoever
// is calling right now."
//
// Go deliberately doesn't expose a goroutine identity the way an OS
// thread ID is exposed, so this falls back to parsing the id out of the
// header line of runtime.Stack's own output — the same trick a number
// of older goroutine-local-storage packages use. It works, but it is
// exactly as fragile as it sounds: it depends on the first line of
// runtime.Stack looking like "goroutine 37 [running]:", which is
// undocumented output format, not a committed API.
//
// Every goroutine that ever calls Reader grows this cache by one entry
// and the entry is never removed, because package leftright itself
// never deregisters a Reader either (spec.md section 9: "Deregistration
// requires the reader's destruction to be synchronized with the drain
// — treat as a future capability, not a required one."). Callers whose
// goroutine population churns — a worker pool that spins up a fresh
// goroutine per job, for instance — should call Map.NewReader and keep
// the handle themselves instead of using this cache.
type goroutineReaders[K comparable, V comparable] struct {
	factory *leftright.ReaderFactory[map[K]V]

	mu    sync.Mutex
	byGID map[uint64]*Reader[K, V]
}

func newGoroutineReaders[K comparable, V comparable](factory *leftright.ReaderFactory[map[K]V]) *goroutineReaders[K, V] {
	return &goroutineReaders[K, V]{
		factory: factory,
		byGID:   make(map[uint64]*Reader[K, V]),
	}
}

func (g *goroutineReaders[K, V]) forCurrentGoroutine() *Reader[K, V] {
	id := currentGoroutineID()

	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.byGID[id]; ok {
		return r
	}
	r := newReader[K, V](g.factory.CreateReader())
	g.byGID[id] = r
	return r
}

// currentGoroutineID extracts the numeric id from the calling
// goroutine's own stack trace header.
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	line := buf[:n]

	const prefix = "goroutine "
	if !bytes.HasPrefix(line, []byte(prefix)) {
		panic("lrmap: unexpected runtime.Stack format")
	}
	line = line[len(prefix):]

	space := bytes.IndexByte(line, ' ')
	if space < 0 {
		panic("lrmap: unexpected runtime.Stack format")
	}

	id, err := strconv.ParseUint(string(line[:space]), 10, 64)
	if err != nil {
		panic("lrmap: unexpected runtime.Stack format: " + err.Error())
	}
	return id
}
