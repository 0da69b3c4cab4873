package reconcile

// applyDiff is a reference application of a Diff to a key sequence, used
// only by tests to check properties 6-8 from spec §8. It mirrors the
// application order from spec §4.8: removals land first (descending index,
// already guaranteed by Compute), then every Added/Moved op claims its
// target slot, and the untouched survivors (the LIS-anchored ones Compute
// never emitted a MoveOp for) fill whatever slots remain, in their original
// relative order — which is exactly why the LIS choice is correct: the
// anchored elements need no repositioning relative to each other.
func applyDiff[K comparable](old []K, newKeys []K, d Diff) []K {
	if d.Clear {
		return nil
	}

	cur := append([]K(nil), old...)
	for _, r := range d.Removed {
		cur = append(cur[:r.At], cur[r.At+1:]...)
	}

	finalLen := len(newKeys)
	entries := make([]K, finalLen)
	occupied := make([]bool, finalLen)
	consumed := make([]bool, len(cur))

	for _, a := range d.Added {
		entries[a.At] = newKeys[a.At]
		occupied[a.At] = true
	}
	for _, m := range d.Moved {
		for i := 0; i < m.Len; i++ {
			entries[m.To+i] = cur[m.From+i]
			occupied[m.To+i] = true
			consumed[m.From+i] = true
		}
	}

	var leftover []K
	for i, v := range cur {
		if !consumed[i] {
			leftover = append(leftover, v)
		}
	}
	li := 0
	for i := 0; i < finalLen; i++ {
		if !occupied[i] {
			entries[i] = leftover[li]
			li++
		}
	}
	return entries
}
