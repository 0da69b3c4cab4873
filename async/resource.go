package async

import "github.com/loomkit/loom/reactive"

// State is a Resource's lifecycle position.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateError:
		return "Error"
	default:
		return "Loading"
	}
}

// Status is a Resource's current reactive value: exactly one of Loading,
// Ready(Value), or Error(Err) at a time.
type Status[T any] struct {
	State State
	Value T
	Err   error
}

// Resource is spec §4.11's create_resource: a source-driven async fetch with
// at most one in-flight task at a time, aborting a stale fetch the moment
// its source changes.
type Resource[S, T any] struct {
	source reactive.Read[S]
	status reactive.Read[Status[T]]
	set    reactive.Write[Status[T]]

	current *Handle
}

// CreateResource allocates a Loading-initialized resource, then creates an
// effect (scoped to owner) that re-fetches every time source changes,
// aborting any task it had previously in flight (spec §4.11). The type
// parameter order is (result type, source type) so call sites read
// naturally: CreateResource[User](owner, userID, fetchUser).
func CreateResource[T, S any](owner *reactive.Owner, source reactive.Read[S], fetch func(S) (T, error)) *Resource[S, T] {
	status, setStatus := reactive.CreateSignal(Status[T]{State: StateLoading})
	r := &Resource[S, T]{source: source, status: status, set: setStatus}

	reactive.CreateEffect(owner, func() {
		s := source.Get()

		if r.current != nil {
			r.current.Dispose()
		}
		r.set.Set(Status[T]{State: StateLoading})

		h := SpawnWithResultErr(owner, func() (T, error) {
			return fetch(s)
		}, func(v T, err error) {
			if err != nil {
				r.set.Set(Status[T]{State: StateError, Err: err})
				return
			}
			r.set.Set(Status[T]{State: StateReady, Value: v})
		})
		r.current = h
	})

	return r
}

// Status returns the resource's reactive status reader.
func (r *Resource[S, T]) Status() reactive.Read[Status[T]] { return r.status }

// Refetch forces a re-trigger by re-delivering the source's current value to
// the resource's effect (spec §4.11.3), without the caller needing write
// access to the source signal.
func (r *Resource[S, T]) Refetch() {
	r.source.Touch()
}

// SpawnWithResultErr is SpawnWithResult specialized for the common
// (value, error) fetcher shape used by Resource.
func SpawnWithResultErr[T any](owner *reactive.Owner, fn func() (T, error), onComplete func(T, error)) *Handle {
	return SpawnWithResult(owner, func() result[T] {
		v, err := fn()
		return result[T]{v, err}
	}, func(r result[T]) {
		onComplete(r.v, r.err)
	})
}

type result[T any] struct {
	v   T
	err error
}
