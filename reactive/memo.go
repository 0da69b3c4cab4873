package reactive

import "reflect"

// Memo is a signal layered on an owned effect: the effect computes fn(),
// subscribing to whatever signals fn reads, and writes the result into the
// backing signal (spec §4.4). Reading a Memo subscribes the caller to the
// backing signal, so dependency propagation through a chain of memos is
// automatic.
type Memo[T any] struct {
	read Read[T]
}

// CreateMemo creates a memo under owner. fn runs once eagerly to prime the
// value, then re-runs whenever a signal it read last time is written.
func CreateMemo[T any](owner *Owner, fn func() T) Read[T] {
	return createMemo(owner, fn, nil)
}

// CreateMemoWithEquality is CreateMemo with an equality gate: the backing
// signal is only rewritten (and downstream effects only re-run) when the
// freshly computed value differs from the cached one by eq. This is the
// mechanism spec §8 property 5 and scenario S2 rely on to cut churn.
func CreateMemoWithEquality[T any](owner *Owner, fn func() T, eq func(a, b T) bool) Read[T] {
	return createMemo(owner, fn, eq)
}

// CreateMemoWithDeepCompare is CreateMemo gated by reflect.DeepEqual instead
// of ==, for memo values that are structs/slices/maps rather than comparable
// scalars. Equivalent to CreateMemoWithEquality(owner, fn, reflect.DeepEqual)
// spelled out for readability at call sites.
func CreateMemoWithDeepCompare[T any](owner *Owner, fn func() T) Read[T] {
	return createMemo(owner, fn, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

func createMemo[T any](owner *Owner, fn func() T, eq func(a, b T) bool) Read[T] {
	var sig *Signal[T]
	var primed bool

	CreateEffect(owner, func() {
		v := fn()
		if !primed {
			sig = NewSignalWithEquals(v, eq)
			primed = true
			return
		}
		sig.Set(v)
	})

	return Read[T]{sig: sig}
}
