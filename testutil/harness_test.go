package testutil

import (
	"testing"
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

// cleanupT is a testingT that collects Cleanup callbacks so the test can
// run them itself.
type cleanupT struct{ cleanups []func() }

func (c *cleanupT) Helper() {}

func (c *cleanupT) Cleanup(fn func()) { c.cleanups = append(c.cleanups, fn) }

func TestNewDisposesOwnerOnCleanup(t *testing.T) {
	ct := &cleanupT{}
	h := New(ct)
	var disposed bool
	h.Run(func() {
		reactive.CreateEffect(h.Owner, func() {
			reactive.OnCleanup(func() { disposed = true })
		})
	})
	for _, fn := range ct.cleanups {
		fn()
	}
	if !disposed {
		t.Fatalf("expected owner disposal to run registered cleanup")
	}
}

func TestTickRunsPendingEffects(t *testing.T) {
	h := New(t)
	var seen int
	var setCount reactive.Write[int]
	h.Run(func() {
		count, set := reactive.CreateSignal(0)
		setCount = set
		reactive.CreateEffect(h.Owner, func() { seen = count.Get() })
	})
	setCount.Set(5)
	h.Tick()
	if seen != 5 {
		t.Fatalf("seen = %d, want 5", seen)
	}
}

func TestWaitForDrainObservesAsyncCompletion(t *testing.T) {
	h := New(t)
	h.Run(func() {
		async.SpawnWithResult(h.Owner, func() int {
			time.Sleep(time.Millisecond)
			return 1
		}, func(int) {})
	})
	if !h.WaitForDrain(time.Second) {
		t.Fatalf("expected async task to drain within timeout")
	}
}

func TestTrackedDispatchRecordsEvent(t *testing.T) {
	h := New(t)
	var clicked bool
	var node *component.Node
	h.Run(func() {
		node = component.Button(component.Static(component.TextContent("go")), func() { clicked = true })
	})
	h.TrackedDispatch(node, component.Event{Kind: component.EventClick})

	if !clicked {
		t.Fatalf("expected click handler to run")
	}
	if !h.Events().WasFired(component.EventClick) {
		t.Fatalf("expected tracker to record the click")
	}
	if got := h.Events().FiredCount(component.EventClick); got != 1 {
		t.Fatalf("FiredCount = %d, want 1", got)
	}
}
