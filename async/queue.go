// Package async is the C10/C11 bridge between the multi-threaded worker
// pool and the single-threaded reactive core (spec §4.10, §4.11, §5). Tasks
// run on ordinary goroutines; they talk back to the UI thread exclusively
// through the dispatch queue this file implements, never by touching a
// signal, effect, or owner directly.
package async

import (
	"sync"

	"github.com/loomkit/loom/logging"
	"github.com/loomkit/loom/reactive"
)

// dispatchQueue is the UI-thread dispatch queue: a multi-producer,
// single-consumer channel. Worker goroutines (producers) enqueue; the UI
// loop (the sole consumer, via DrainDispatchQueue) dequeues in FIFO order.
var dispatchQueue = make(chan func(), 4096)

// enqueue posts fn to run on the UI thread at the next drain. Never call
// this from the UI thread itself with a full queue expectation — it may
// block if 4096 callbacks are already pending, which signals a host that
// isn't calling DrainDispatchQueue often enough.
func enqueue(fn func()) {
	dispatchQueue <- fn
}

// coalesced holds callbacks enqueued via EnqueueCoalesced, keyed so a burst
// of redundant wakeups collapses into the single most recent callback per
// key by the time the next drain runs.
var (
	coalescedMu    sync.Mutex
	coalesced      = make(map[any]func())
	coalescedOrder []any
)

// EnqueueCoalesced posts fn to run on the UI thread at the next drain, like
// enqueue, but if another callback is already queued under the same key and
// hasn't drained yet, fn replaces it instead of running alongside it — the
// CoalesceAll strategy spec §9's "thread-safe write dispatch helper" note
// calls out, useful when many duplicate wakeups (e.g. repeated progress
// updates) should collapse into one redraw.
func EnqueueCoalesced(key any, fn func()) {
	coalescedMu.Lock()
	defer coalescedMu.Unlock()
	if _, exists := coalesced[key]; !exists {
		coalescedOrder = append(coalescedOrder, key)
	}
	coalesced[key] = fn
}

// DrainDispatchQueue runs every callback currently queued, in FIFO order,
// with no current effect (spec §4.10: "running each callback with no
// current effect"). Coalesced callbacks (EnqueueCoalesced) drain first, one
// per key, in the order their key was first used. Called once per tick,
// before running pending effects. Returns the number of callbacks it ran.
func DrainDispatchQueue() int {
	n := 0

	coalescedMu.Lock()
	order := coalescedOrder
	batch := coalesced
	coalescedOrder = nil
	coalesced = make(map[any]func())
	coalescedMu.Unlock()

	for _, key := range order {
		runDispatched(batch[key])
		n++
	}

	for {
		select {
		case fn := <-dispatchQueue:
			runDispatched(fn)
			n++
		default:
			return n
		}
	}
}

func runDispatched(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.Default().Errorf("panic in UI-thread dispatch callback: %v", r)
		}
	}()
	reactive.UntrackedVoid(fn)
}
