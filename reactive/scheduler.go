package reactive

import "github.com/loomkit/loom/logging"

// DefaultFixpointBudget bounds how many pending-effect drain iterations a
// single Tick will perform before giving up and deferring the remainder to
// the next tick (spec §4.12, §7 "Fixpoint overrun in tick()").
const DefaultFixpointBudget = 10000

var (
	pending      []*Effect
	pendingSet   = make(map[uint64]bool)
	fixpointBudget = DefaultFixpointBudget
)

// OnEffectRerun and OnFixpointOverrun are instrumentation hooks, nil by
// default. monitoring.Install wires them to Prometheus counters; nothing in
// this package depends on monitoring.
var (
	OnEffectRerun     func()
	OnFixpointOverrun func()
)

// scheduleEffect enqueues a dirty effect for the scheduler instead of running
// it inline (spec §4.2's critical notification policy). Insertion order is
// preserved and duplicates are deduped, so effects run in the order they were
// first marked dirty within this tick.
func scheduleEffect(e *Effect) {
	if pendingSet[e.id] {
		return
	}
	pendingSet[e.id] = true
	pending = append(pending, e)
}

// SetFixpointBudget overrides DefaultFixpointBudget, mainly for tests that
// want to exercise the overrun path cheaply.
func SetFixpointBudget(n int) { fixpointBudget = n }

// RunPendingEffects drains the pending-effect queue to a fixpoint: effects
// run in insertion order, and an effect's run may enqueue further effects
// (e.g. writing a signal another effect reads), which are then run within the
// same call. A single effect never runs twice per drain call`s initial batch
// unless re-marked dirty by a later write — the pendingSet dedup is reset
// each time an effect is actually popped so a write occurring while it is
// draining can re-queue it validly.
//
// Returns true if it converged, false if the fixpoint budget was exhausted
// (the remainder stays queued for the next call — not a crash, per spec §7).
func RunPendingEffects() bool {
	iterations := 0
	for len(pending) > 0 {
		if iterations >= fixpointBudget {
			logging.Default().TaggedWarnf("scheduler", "fixpoint budget (%d) exhausted with %d effects still pending; deferring to next tick", fixpointBudget, len(pending))
			if OnFixpointOverrun != nil {
				OnFixpointOverrun()
			}
			return false
		}
		iterations++

		e := pending[0]
		pending = pending[1:]
		delete(pendingSet, e.id)

		if e.disposed {
			continue
		}
		if !e.isDirty {
			// Marked, then cleaned some other way (shouldn't normally happen,
			// but re-running a clean effect would be wasted work).
			continue
		}
		e.run()
		if OnEffectRerun != nil {
			OnEffectRerun()
		}
	}
	return true
}

// PendingCount reports how many effects are currently queued; used by tests
// and devtools to observe scheduler state.
func PendingCount() int { return len(pending) }

// resetScheduler clears all pending state and forgets the recorded UI
// goroutine, so the next CreateEffect re-records it. Exposed for tests only:
// Go runs each test function on its own goroutine.
func resetScheduler() {
	pending = nil
	pendingSet = make(map[uint64]bool)
	uiGoroutine = 0
}
