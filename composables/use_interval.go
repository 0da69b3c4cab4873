package composables

import (
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
)

// UseInterval wakes fn every period, disposed when owner is disposed.
func UseInterval(owner *reactive.Owner, period time.Duration, fn func()) *async.Handle {
	return async.SpawnInterval(owner, period, fn)
}
