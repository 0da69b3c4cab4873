package composables

import "github.com/loomkit/loom/reactive"

// UseEffect runs fn immediately and re-runs it whenever a signal it reads
// changes, scoped to owner. Thin wrapper kept for call-site symmetry with
// the rest of the use_* composables.
func UseEffect(owner *reactive.Owner, fn func()) *reactive.Effect {
	return reactive.CreateEffect(owner, fn)
}

// UseEffectWithCleanup is UseEffect for functions that register a cleanup
// via reactive.OnCleanup from inside fn.
func UseEffectWithCleanup(owner *reactive.Owner, fn func()) *reactive.Effect {
	return reactive.CreateEffect(owner, fn)
}
