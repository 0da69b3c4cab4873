package composables

import (
	"errors"
	"testing"
	"time"

	"github.com/loomkit/loom/async"
	"github.com/loomkit/loom/reactive"
)

func TestUseCounterClampsAndSteps(t *testing.T) {
	c := UseCounter(5, WithMin(0), WithMax(10), WithStep(3))
	c.Increment()
	if got := c.Count.GetUntracked(); got != 8 {
		t.Fatalf("Count = %d, want 8", got)
	}
	c.Increment()
	if got := c.Count.GetUntracked(); got != 10 {
		t.Fatalf("Count = %d, want clamped to 10", got)
	}
	c.Reset()
	if got := c.Count.GetUntracked(); got != 5 {
		t.Fatalf("Count = %d, want reset to 5", got)
	}
}

func TestUseToggleFlipsAndSets(t *testing.T) {
	tg := UseToggle(false)
	tg.Toggle()
	if !tg.Value.GetUntracked() {
		t.Fatalf("expected true after Toggle")
	}
	tg.Off()
	if tg.Value.GetUntracked() {
		t.Fatalf("expected false after Off")
	}
}

func waitForDrain(t *testing.T, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if async.DrainDispatchQueue() > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func TestUseAsyncExecuteResolvesData(t *testing.T) {
	owner := reactive.NewOwner(nil)
	a := UseAsync(owner, func() (int, error) { return 42, nil })
	a.Execute()
	if !a.Loading.GetUntracked() {
		t.Fatalf("expected Loading true immediately after Execute")
	}
	waitForDrain(t, time.Second)

	if a.Loading.GetUntracked() {
		t.Fatalf("expected Loading false after completion")
	}
	data := a.Data.GetUntracked()
	if data == nil || *data != 42 {
		t.Fatalf("Data = %v, want 42", data)
	}
}

func TestUseAsyncExecuteCapturesError(t *testing.T) {
	owner := reactive.NewOwner(nil)
	wantErr := errors.New("boom")
	a := UseAsync(owner, func() (int, error) { return 0, wantErr })
	a.Execute()
	waitForDrain(t, time.Second)

	if err := a.Err.GetUntracked(); err != wantErr {
		t.Fatalf("Err = %v, want %v", err, wantErr)
	}
}
