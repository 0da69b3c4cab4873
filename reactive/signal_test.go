package reactive

import "testing"

func TestSignalWriteBumpsVersion(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(0)
	before := r.Version()
	w.Set(42)
	if r.Version() != before+1 {
		t.Fatalf("version = %d, want %d", r.Version(), before+1)
	}
	if got := r.GetUntracked(); got != 42 {
		t.Fatalf("value = %d, want 42", got)
	}
}

func TestSignalUpdateBumpsVersion(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(10)
	before := r.Version()
	w.Update(func(v int) int { return v + 1 })
	if r.Version() != before+1 {
		t.Fatalf("version = %d, want %d", r.Version(), before+1)
	}
	if got := r.GetUntracked(); got != 11 {
		t.Fatalf("value = %d, want 11", got)
	}
}

func TestSignalEqualityGateSkipsWrite(t *testing.T) {
	resetScheduler()
	r, w := CreateSignalWithEquals(5, func(a, b int) bool { return a == b })
	before := r.Version()
	w.Set(5)
	if r.Version() != before {
		t.Fatalf("version changed on equal write: %d -> %d", before, r.Version())
	}
	w.Set(6)
	if r.Version() != before+1 {
		t.Fatalf("version = %d, want %d after real change", r.Version(), before+1)
	}
}

func TestCounterScenarioS1(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(0)
	var seen []int
	owner := NewOwner(nil)
	CreateEffect(owner, func() {
		seen = append(seen, r.Get())
	})

	w.Set(1)
	RunPendingEffects()
	w.Set(2)
	RunPendingEffects()

	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}
}

func TestUntrackedReadDoesNotSubscribe(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(0)
	runs := 0
	owner := NewOwner(nil)
	CreateEffect(owner, func() {
		runs++
		Untracked(func() int { return r.Get() })
	})

	w.Set(1)
	RunPendingEffects()

	if runs != 1 {
		t.Fatalf("runs = %d, want 1 (untracked read must not subscribe)", runs)
	}
}
