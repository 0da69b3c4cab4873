// Package loom is the public, ambient-owner-aware facade over the reactive
// core (spec §6 "External interfaces — to the view-construction layer").
// Internally it is a thin wrapper around reactive/component/async: almost
// every function here just forwards to CurrentOwner() so application code
// never has to thread an *Owner through every call explicitly.
package loom

import (
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

// Read, Write and Owner are re-exported so application code importing loom
// doesn't also need to import the reactive package directly.
type Read[T any] = reactive.Read[T]
type Write[T any] = reactive.Write[T]
type Owner = reactive.Owner
type Effect = reactive.Effect
type ContextKey[T any] = reactive.ContextKey[T]

// CreateSignal allocates a signal cell and returns its Read/Write halves.
func CreateSignal[T any](initial T) (Read[T], Write[T]) {
	return reactive.CreateSignal(initial)
}

// CreateSignalWithEquals is CreateSignal with a custom equality gate that
// suppresses writes reporting no change.
func CreateSignalWithEquals[T any](initial T, equals func(a, b T) bool) (Read[T], Write[T]) {
	return reactive.CreateSignalWithEquals(initial, equals)
}

// CreateMemo derives a cached, reactively-updated value from fn, scoped to
// the current owner.
func CreateMemo[T any](fn func() T) Read[T] {
	return reactive.CreateMemo(reactive.CurrentOwner(), fn)
}

// CreateMemoWithEquality is CreateMemo with an explicit equality function
// gating downstream propagation (spec §4.4, §8 property 5).
func CreateMemoWithEquality[T any](fn func() T, equals func(a, b T) bool) Read[T] {
	return reactive.CreateMemoWithEquality(reactive.CurrentOwner(), fn, equals)
}

// CreateEffect registers fn under the current owner and runs it once
// immediately; it re-runs whenever a signal it read last time is written.
func CreateEffect(fn func()) *Effect {
	return reactive.CreateEffect(reactive.CurrentOwner(), fn)
}

// OnCleanup registers g to run before the enclosing effect's next run, or
// when it is disposed. Only meaningful called from inside an effect.
func OnCleanup(g func()) {
	reactive.OnCleanup(g)
}

// Untracked runs fn without subscribing the currently-running effect to any
// signal fn reads.
func Untracked[T any](fn func() T) T {
	return reactive.Untracked(fn)
}

// UntrackedVoid is Untracked for side-effecting closures.
func UntrackedVoid(fn func()) {
	reactive.UntrackedVoid(fn)
}

// WithOwner runs fn with owner set as current, so signals/effects/memos/
// components created inside fn without an explicit owner are scoped to it.
func WithOwner[T any](owner *Owner, fn func() T) T {
	return reactive.WithOwner(owner, fn)
}

// WithOwnerVoid is WithOwner for side-effecting closures.
func WithOwnerVoid(owner *Owner, fn func()) {
	reactive.WithOwnerVoid(owner, fn)
}

// CurrentOwner returns the owner set by the innermost enclosing WithOwner,
// or nil outside of one.
func CurrentOwner() *Owner {
	return reactive.CurrentOwner()
}

// NewOwner creates a fresh owner scope as a child of parent (nil for root).
func NewOwner(parent *Owner) *Owner {
	return reactive.NewOwner(parent)
}

// NewContextKey creates a type-safe provide/inject key.
func NewContextKey[T any](name string) ContextKey[T] {
	return reactive.NewContextKey[T](name)
}

// ProvideContext stores value in the current owner's context map, keyed by
// key. A no-op outside of a WithOwner scope.
func ProvideContext[T any](key ContextKey[T], value T) {
	owner := CurrentOwner()
	if owner == nil {
		return
	}
	reactive.ProvideTyped(owner, key, value)
}

// Inject looks up key starting at the current owner and walking parents.
func Inject[T any](key ContextKey[T]) (T, bool) {
	owner := CurrentOwner()
	if owner == nil {
		var zero T
		return zero, false
	}
	return reactive.InjectTyped(owner, key)
}

// Tick runs one frame of the UI loop (spec §4.12, §6 "tick()"): drain the
// async dispatch queue, then run pending effects to fixpoint. The platform
// adapter calls this once per frame, before layout/render.
func Tick() {
	async.DrainDispatchQueue()
	reactive.RunPendingEffects()
}

// SpawnTask runs fn on the worker pool, registered under the current owner.
func SpawnTask(fn func()) *async.Handle {
	return async.Spawn(CurrentOwner(), fn)
}

// SpawnTaskWithResult runs fn on the worker pool; onComplete is delivered on
// the UI thread at the next Tick, unless the owning scope disposes first.
func SpawnTaskWithResult[T any](fn func() T, onComplete func(T)) *async.Handle {
	return async.SpawnWithResult(CurrentOwner(), fn, onComplete)
}

// SpawnInterval wakes fn every period, coalescing missed ticks.
func SpawnInterval(period time.Duration, fn func()) *async.Handle {
	return async.SpawnInterval(CurrentOwner(), period, fn)
}

// SpawnDebounced returns a trigger function coalescing calls within delay
// into a single invocation of h with the most recent argument.
func SpawnDebounced[T any](delay time.Duration, h func(T)) (func(T), *async.Handle) {
	return async.SpawnDebounced(CurrentOwner(), delay, h)
}

// CreateResource is spec §4.11's create_resource, scoped to the current
// owner.
func CreateResource[T, S any](source Read[S], fetch func(S) (T, error)) *async.Resource[S, T] {
	return async.CreateResource[T](CurrentOwner(), source, fetch)
}

// Widget builders — thin re-exports of package component's constructors so
// application code only needs to import loom.
var (
	Text      = component.Text
	Button    = component.Button
	Flex      = component.Flex
	TextInput = component.TextInput
	Checkbox  = component.Checkbox
)

// Custom builds a Kind-Custom node tagged with name.
func Custom(name string) *component.Node {
	return component.Custom(name)
}

// Static, FromSignal and Derived build the three Value flavors a property
// binding can watch.
func Static[T any](v T) component.Value[T] { return component.Static(v) }
func FromSignal[T any](r Read[T]) component.Value[T] {
	return component.FromSignal(r)
}
func Derived[T any](fn func() T) component.Value[T] { return component.Derived(fn) }

// NewUIWriter wraps a Write[T] for safe use from a worker goroutine (see
// SpawnTask): Send/SendUpdate enqueue the actual write onto the UI-thread
// dispatch queue instead of mutating the signal inline.
func NewUIWriter[T any](w Write[T]) async.UIWriter[T] {
	return async.NewUIWriter(w)
}
