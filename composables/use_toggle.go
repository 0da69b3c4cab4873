package composables

import "github.com/loomkit/loom/reactive"

// Toggle is a reactive boolean with on/off/toggle convenience methods.
type Toggle struct {
	Value reactive.Read[bool]
	set   reactive.Write[bool]
}

// UseToggle creates a Toggle starting at initial.
func UseToggle(initial bool) *Toggle {
	r, w := reactive.CreateSignal(initial)
	return &Toggle{Value: r, set: w}
}

// Toggle flips the value.
func (t *Toggle) Toggle() {
	t.set.Update(func(v bool) bool { return !v })
}

// Set writes val directly.
func (t *Toggle) Set(val bool) { t.set.Set(val) }

// On sets the value to true.
func (t *Toggle) On() { t.set.Set(true) }

// Off sets the value to false.
func (t *Toggle) Off() { t.set.Set(false) }
