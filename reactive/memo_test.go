package reactive

import "testing"

func TestMemoEqualityGateScenarioS2(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(0)
	owner := NewOwner(nil)
	m := CreateMemoWithEquality(owner, func() int { return r.Get() / 5 }, func(a, b int) bool { return a == b })

	c := 0
	CreateEffect(owner, func() {
		m.Get()
		c++
	})

	w.Set(1)
	RunPendingEffects()
	w.Set(2)
	RunPendingEffects()
	w.Set(5)
	RunPendingEffects()

	if c != 2 {
		t.Fatalf("downstream effect ran %d times, want 2 (initial + boundary crossing)", c)
	}
}

func TestMemoWithoutEqualityAlwaysPropagates(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(0)
	owner := NewOwner(nil)
	// No equality gate: every upstream write re-runs the memo and writes
	// its result downstream, even if the computed value happens to match
	// the previous one. Here each write is a distinct value anyway, to show
	// plain propagation.
	m := CreateMemo(owner, func() int { return r.Get() })

	c := 0
	CreateEffect(owner, func() {
		m.Get()
		c++
	})

	w.Set(1)
	RunPendingEffects()
	w.Set(2)
	RunPendingEffects()

	if c != 3 {
		t.Fatalf("downstream effect ran %d times, want 3 (initial + 2 writes)", c)
	}
}

func TestChainedMemos(t *testing.T) {
	resetScheduler()
	r, w := CreateSignal(2)
	owner := NewOwner(nil)
	doubled := CreateMemo(owner, func() int { return r.Get() * 2 })
	quadrupled := CreateMemo(owner, func() int { return doubled.Get() * 2 })

	if got := quadrupled.GetUntracked(); got != 8 {
		t.Fatalf("quadrupled = %d, want 8", got)
	}

	var seen int
	CreateEffect(owner, func() {
		seen = quadrupled.Get()
	})
	w.Set(3)
	RunPendingEffects()
	if seen != 12 {
		t.Fatalf("seen = %d, want 12", seen)
	}
}


func TestCreateMemoWithDeepCompareGatesOnStructEquality(t *testing.T) {
	resetScheduler()
	owner := NewOwner(nil)
	r, w := CreateSignal([]int{1, 2})
	m := CreateMemoWithDeepCompare(owner, func() []int {
		v := r.Get()
		return append([]int(nil), v...)
	})

	c := 0
	CreateEffect(owner, func() {
		m.Get()
		c++
	})

	w.Set([]int{1, 2}) // deep-equal to the prior slice value
	RunPendingEffects()
	w.Set([]int{1, 3})
	RunPendingEffects()

	if c != 2 {
		t.Fatalf("downstream effect ran %d times, want 2 (initial + genuine change)", c)
	}
}
