package async

import (
	"testing"
	"time"

	"github.com/loomkit/loom/reactive"
)

func waitForDrain(t *testing.T, want int, timeout time.Duration) int {
	t.Helper()
	deadline := time.Now().Add(timeout)
	total := 0
	for time.Now().Before(deadline) {
		total += DrainDispatchQueue()
		if total >= want {
			return total
		}
		time.Sleep(2 * time.Millisecond)
	}
	return total
}

func TestSpawnWithResultDeliversOnUIThread(t *testing.T) {
	done := make(chan struct{})
	var got int
	Spawn(nil, func() {
		SpawnWithResult(nil, func() int { return 42 }, func(v int) {
			got = v
			close(done)
		})
	})

	waitForDrain(t, 1, time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("on-complete callback never ran")
	}
	if got != 42 {
		t.Fatalf("got = %d, want 42", got)
	}
}

func TestAbortSuppressesCompletionCallback(t *testing.T) {
	started := make(chan struct{})
	fired := false
	h := SpawnWithResult(nil, func() int {
		close(started)
		time.Sleep(50 * time.Millisecond)
		return 1
	}, func(v int) {
		fired = true
	})

	<-started
	h.Dispose()
	time.Sleep(100 * time.Millisecond)
	DrainDispatchQueue()

	if fired {
		t.Fatalf("on-complete callback fired after task was aborted")
	}
}

func TestOwnerDisposalAbortsRegisteredTask(t *testing.T) {
	owner := reactive.NewOwner(nil)
	started := make(chan struct{})
	fired := false
	SpawnWithResult(owner, func() int {
		close(started)
		time.Sleep(50 * time.Millisecond)
		return 1
	}, func(v int) {
		fired = true
	})

	<-started
	owner.Dispose()
	time.Sleep(100 * time.Millisecond)
	DrainDispatchQueue()

	if fired {
		t.Fatalf("disposing the owner did not suppress the task's completion callback")
	}
}

func TestSpawnIntervalCoalescesAndStopsOnAbort(t *testing.T) {
	var ticks int
	h := SpawnInterval(nil, 15*time.Millisecond, func() {
		ticks++
	})

	time.Sleep(80 * time.Millisecond)
	waitForDrain(t, 1, 200*time.Millisecond)
	h.Dispose()
	afterAbort := ticks
	time.Sleep(60 * time.Millisecond)
	DrainDispatchQueue()

	if ticks > afterAbort {
		t.Fatalf("ticks increased after Dispose: %d -> %d", afterAbort, ticks)
	}
	if afterAbort == 0 {
		t.Fatalf("interval never fired")
	}
}

func TestSpawnDebouncedCoalescesBurstToLatestValue(t *testing.T) {
	var got int
	var calls int
	trigger, _ := SpawnDebounced(nil, 30*time.Millisecond, func(v int) {
		got = v
		calls++
	})

	trigger(1)
	trigger(2)
	trigger(3)

	waitForDrain(t, 1, time.Second)
	if calls != 1 {
		t.Fatalf("calls = %d, want exactly 1 (burst coalesced)", calls)
	}
	if got != 3 {
		t.Fatalf("got = %d, want 3 (most recent argument)", got)
	}
}
