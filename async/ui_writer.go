package async

import "github.com/loomkit/loom/reactive"

// UIWriter wraps a reactive.Write[T] so it can be called safely from any
// goroutine: Send and SendUpdate enqueue the actual signal write onto the
// UI-thread dispatch queue instead of mutating the signal inline, which
// would violate the single-UI-goroutine invariant package reactive assumes
// (spec §5, §9's thread-safe write dispatch helper). The write lands the
// next time Tick drains the queue.
type UIWriter[T any] struct {
	w reactive.Write[T]
}

// NewUIWriter wraps w for cross-goroutine use.
func NewUIWriter[T any](w reactive.Write[T]) UIWriter[T] {
	return UIWriter[T]{w: w}
}

// Send enqueues a write of v, safe to call from a worker goroutine.
func (u UIWriter[T]) Send(v T) {
	enqueue(func() { u.w.Set(v) })
}

// SendUpdate enqueues an in-place update via fn, applied when the queue
// drains — fn itself still runs on the UI thread, so it may safely read
// other signals.
func (u UIWriter[T]) SendUpdate(fn func(T) T) {
	enqueue(func() { u.w.Update(fn) })
}
