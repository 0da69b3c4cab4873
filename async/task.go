package async

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/loomkit/loom/logging"
	"github.com/loomkit/loom/reactive"
)

// Handle is a spawned task's handle, registered under an owner so
// owner.Dispose aborts it (spec §4.5, §4.10). It implements
// reactive.Disposable.
type Handle struct {
	mu        sync.Mutex
	aborted   bool
	completed bool
	stop      chan struct{}
}

// OnTaskSpawn and OnTaskAbort are instrumentation hooks, nil by default.
// monitoring.Install wires them to Prometheus counters.
var (
	OnTaskSpawn func()
	OnTaskAbort func()
)

func newHandle() *Handle {
	if OnTaskSpawn != nil {
		OnTaskSpawn()
	}
	return &Handle{stop: make(chan struct{})}
}

// Dispose aborts the task: its on-complete callback, if it hasn't already
// fired, is suppressed; a running SpawnInterval/SpawnDebounced loop exits at
// its next wakeup.
func (h *Handle) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aborted {
		return
	}
	h.aborted = true
	close(h.stop)
	if OnTaskAbort != nil {
		OnTaskAbort()
	}
}

// Aborted reports whether Dispose has been called.
func (h *Handle) Aborted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.aborted
}

func (h *Handle) markCompleted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.aborted || h.completed {
		return false
	}
	h.completed = true
	return true
}

func registerUnderOwner(owner *reactive.Owner, h *Handle) {
	if owner != nil {
		owner.RegisterDisposable(h)
	}
}

func recoverTaskPanic(context string) {
	if r := recover(); r != nil {
		logging.Default().Errorf("panic in %s: %v", context, r)
	}
}

// Spawn runs fn on the worker pool, registered under owner (pass nil for an
// unscoped, un-cancellable task). fn must not touch signals, effects,
// components, or owners directly.
func Spawn(owner *reactive.Owner, fn func()) *Handle {
	h := newHandle()
	registerUnderOwner(owner, h)
	go func() {
		defer recoverTaskPanic("spawned task")
		if h.Aborted() {
			return
		}
		fn()
	}()
	return h
}

// SpawnWithResult runs fn on the worker pool; when it returns, onComplete is
// enqueued on the UI-thread dispatch queue with the result — unless the task
// was aborted first, in which case the callback is dropped without running
// (spec §4.10).
func SpawnWithResult[T any](owner *reactive.Owner, fn func() T, onComplete func(T)) *Handle {
	h := newHandle()
	registerUnderOwner(owner, h)
	go func() {
		defer recoverTaskPanic("spawned task")
		result := fn()
		if !h.markCompleted() {
			return
		}
		enqueue(func() {
			if h.Aborted() {
				return
			}
			onComplete(result)
		})
	}()
	return h
}

// SpawnInterval wakes fn every period, coalescing any missed ticks (at most
// one invocation per interval — the same guarantee time.Ticker gives its
// channel, reinforced here with a rate.Limiter so a burst of external
// wakeups funnelled through the same handle can't exceed one dispatch per
// period either).
func SpawnInterval(owner *reactive.Owner, period time.Duration, fn func()) *Handle {
	h := newHandle()
	registerUnderOwner(owner, h)
	limiter := rate.NewLimiter(rate.Every(period), 1)

	go func() {
		defer recoverTaskPanic("interval task")
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				if !limiter.Allow() {
					continue
				}
				enqueue(func() {
					if h.Aborted() {
						return
					}
					fn()
				})
			}
		}
	}()
	return h
}

// SpawnDebounced returns a trigger function that coalesces calls within
// delay into a single invocation of h using the most recently supplied
// argument — the classic trailing-edge debounce.
func SpawnDebounced[T any](owner *reactive.Owner, delay time.Duration, h func(T)) (trigger func(T), handle *Handle) {
	handle = newHandle()
	registerUnderOwner(owner, handle)

	var mu sync.Mutex
	var timer *time.Timer
	var latest T

	fire := func() {
		mu.Lock()
		v := latest
		mu.Unlock()
		enqueue(func() {
			if handle.Aborted() {
				return
			}
			h(v)
		})
	}

	trigger = func(v T) {
		mu.Lock()
		latest = v
		if timer == nil {
			timer = time.AfterFunc(delay, fire)
		} else {
			timer.Reset(delay)
		}
		mu.Unlock()
	}

	return trigger, handle
}
