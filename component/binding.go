package component

import "github.com/loomkit/loom/reactive"

// sourceKind discriminates the three reactive-value flavors a binding can
// wrap (spec §4.7: "Static(T), Signal(Read<T>), or Derived(Fn() -> T)").
type sourceKind int

const (
	sourceStatic sourceKind = iota
	sourceSignal
	sourceDerived
)

// Value is a reactive source that a property Bind can watch: a constant, a
// signal's reader half, or an arbitrary derivation closure (which may in
// turn read other signals).
type Value[T any] struct {
	kind    sourceKind
	static  T
	reader  reactive.Read[T]
	derived func() T
}

// Static wraps a constant value; binding it writes once at build time and
// never creates an effect, per spec §4.7.
func Static[T any](v T) Value[T] {
	return Value[T]{kind: sourceStatic, static: v}
}

// FromSignal wraps a signal's reader half.
func FromSignal[T any](r reactive.Read[T]) Value[T] {
	return Value[T]{kind: sourceSignal, reader: r}
}

// Derived wraps an arbitrary read closure, e.g. a combination of several
// signals.
func Derived[T any](fn func() T) Value[T] {
	return Value[T]{kind: sourceDerived, derived: fn}
}

func (v Value[T]) get() T {
	switch v.kind {
	case sourceStatic:
		return v.static
	case sourceSignal:
		return v.reader.Get()
	default:
		return v.derived()
	}
}

// Bind wires a reactive Value[T] to property P on node n: spec §4.7's
//
//	create_effect(move || { let new = v.get(); n.properties.insert(Property(new)); n.mark_dirty(); })
//
// A Static value is written once, synchronously, and creates no effect —
// there is nothing for it to ever re-run in response to.
func Bind[P any](n *Node, v Value[P]) {
	if v.kind == sourceStatic {
		Insert(n, v.static)
		n.MarkDirty()
		return
	}
	reactive.CreateEffect(n.owner, func() {
		newVal := v.get()
		Insert(n, newVal)
		n.MarkDirty()
	})
}
