package composables

import (
	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
)

// Async manages an on-demand async fetch: reactive Data/Loading/Error
// signals plus Execute/Reset methods, scoped to owner so an in-flight fetch
// is aborted if owner is disposed before it completes.
type Async[T any] struct {
	Data    reactive.Read[*T]
	Loading reactive.Read[bool]
	Err     reactive.Read[error]

	owner      *reactive.Owner
	fetcher    func() (T, error)
	setData    reactive.Write[*T]
	setLoading reactive.Write[bool]
	setErr     reactive.Write[error]
	current    *async.Handle
}

// UseAsync creates an Async wrapping fetcher; Execute must be called to
// actually run it (it never fires automatically on construction).
func UseAsync[T any](owner *reactive.Owner, fetcher func() (T, error)) *Async[T] {
	data, setData := reactive.CreateSignal[*T](nil)
	loading, setLoading := reactive.CreateSignal(false)
	errR, setErr := reactive.CreateSignal[error](nil)
	return &Async[T]{
		Data: data, Loading: loading, Err: errR,
		owner: owner, fetcher: fetcher,
		setData: setData, setLoading: setLoading, setErr: setErr,
	}
}

// Execute starts a new fetch, aborting any still-in-flight one from a prior
// call (last write wins, matching CreateResource's source-change semantics).
func (a *Async[T]) Execute() {
	if a.current != nil {
		a.current.Dispose()
	}
	a.setLoading.Set(true)
	a.setErr.Set(nil)

	type result struct {
		v   T
		err error
	}
	a.current = async.SpawnWithResult(a.owner, func() result {
		v, err := a.fetcher()
		return result{v: v, err: err}
	}, func(r result) {
		a.setLoading.Set(false)
		if r.err != nil {
			a.setErr.Set(r.err)
			return
		}
		a.setData.Set(&r.v)
	})
}

// Reset clears Data/Error/Loading without cancelling an in-flight fetch.
func (a *Async[T]) Reset() {
	a.setData.Set(nil)
	a.setLoading.Set(false)
	a.setErr.Set(nil)
}
