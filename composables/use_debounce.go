package composables

import (
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
)

// UseDebounce returns a trigger function that coalesces calls within delay
// into a single call to h with the most recently supplied value.
func UseDebounce[T any](owner *reactive.Owner, delay time.Duration, h func(T)) func(T) {
	trigger, _ := async.SpawnDebounced(owner, delay, h)
	return trigger
}
