// Package testutil provides a test harness for exercising a loom owner
// scope without a real UI loop: a fresh root owner plus a driveable Tick
// that mirrors what the bubbletea adapter does each frame.
package testutil

import (
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
)

// testingT matches the subset of *testing.T the harness needs, so it can
// be used from subtests and benchmarks alike without importing "testing"
// into call sites that don't otherwise need it.
type testingT interface {
	Helper()
	Cleanup(func())
}

// Harness owns a fresh reactive.Owner scoped to the lifetime of a test,
// with automatic disposal registered via t.Cleanup.
type Harness struct {
	t      testingT
	Owner  *reactive.Owner
	events *EventTracker
}

// New creates a Harness with a fresh root owner, disposed automatically
// when the test completes.
func New(t testingT) *Harness {
	t.Helper()
	owner := reactive.NewOwner(nil)
	h := &Harness{t: t, Owner: owner}
	t.Cleanup(owner.Dispose)
	return h
}

// Run executes fn with h.Owner as the current owner (reactive.WithOwnerVoid),
// so components created inside fn (and anything else that reads
// reactive.CurrentOwner) are scoped to the harness. reactive.CreateEffect
// and async.Spawn* still register only under the owner passed to them.
func (h *Harness) Run(fn func()) {
	reactive.WithOwnerVoid(h.Owner, fn)
}

// Tick drains the async dispatch queue and runs pending effects to a
// fixpoint, exactly like loom.Tick — duplicated here rather than imported
// so testutil has no dependency on the root loom package.
func (h *Harness) Tick() {
	async.DrainDispatchQueue()
	reactive.RunPendingEffects()
}

// WaitForDrain polls DrainDispatchQueue until it reports at least one
// callback ran or timeout elapses — for asserting on async task
// completions without a fixed sleep.
func (h *Harness) WaitForDrain(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if async.DrainDispatchQueue() > 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}
