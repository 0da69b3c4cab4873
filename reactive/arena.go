// Package reactive implements the signal/effect/memo dependency graph and the
// owner-scoped disposal tree that everything else in loom is built on.
//
// Everything here runs on a single designated UI thread (see the comment at
// the top of tracker.go for the threading contract); the only cross-thread boundary is
// the async bridge in package async, which never touches these types
// directly.
package reactive

import (
	"runtime"
	"weak"
)

// Arena is the ownership model backing every signal, effect, memo and owner:
// the Go heap plus garbage collector. A signal holds only weak references to
// its subscribing effects (via weak.Pointer, added in Go 1.24) so that an
// effect whose owner has disposed it can be collected even if a signal still
// has a stale entry for it; dead weak pointers are purged lazily on the next
// write (see Signal.notify).
//
// Arena exists mostly to give the five operations names that match the
// specification (alloc/downgrade/upgrade/ptr_eq/collect) — under the hood
// alloc is just "make a pointer", and collect is an optional hint to the
// garbage collector between frames.
type Arena struct{}

// Global is the process-wide arena. The core never needs more than one.
var Global = Arena{}

// Alloc allocates a value on the arena (the Go heap) and returns a strong
// reference to it.
func Alloc[T any](value T) *T {
	v := value
	return &v
}

// Downgrade converts a strong reference into a weak one. The referent may be
// collected once no strong references remain, at which point Upgrade starts
// returning ok=false.
func Downgrade[T any](strong *T) weak.Pointer[T] {
	return weak.Make(strong)
}

// Upgrade attempts to recover a strong reference from a weak one. Returns
// ok=false if the referent has already been collected.
func Upgrade[T any](w weak.Pointer[T]) (strong *T, ok bool) {
	strong = w.Value()
	return strong, strong != nil
}

// PtrEqual reports whether two strong references point at the same
// allocation. Used to dedup subscriber lists by identity rather than value.
func PtrEqual[T any](a, b *T) bool {
	return a == b
}

// Collect offers the collector a chance to reclaim arena cycles between
// frames. It never invalidates outstanding strong references; it is safe to
// call (or never call) at any point — a plain hint, not a requirement.
func Collect() {
	runtime.GC()
}
