package component

import (
	"github.com/loomkit/loom/logging"
	"github.com/loomkit/loom/reactive"
	"github.com/loomkit/loom/reconcile"
)

// ForList is the C8 keyed reconciler bound to a component tree: it watches
// a reactive slice, keys each item, and keeps a Kind-For host node's
// children in sync via reconcile.Compute.
type ForList[T any, K comparable] struct {
	host   *Node
	keyFn  func(T) K
	viewFn func(T) *Node

	entries []*Node
	keys    []K
}

// For builds a ForList: items is read reactively; keyFn extracts a stable,
// hashable key per item; viewFn builds the subtree for one item, run inside
// the For's owner scope so nested bindings are collected there (spec
// §4.8's application order step (c)).
func For[T any, K comparable](items reactive.Read[[]T], keyFn func(T) K, viewFn func(T) *Node) *ForList[T, K] {
	host := New(KindFor)
	f := &ForList[T, K]{host: host, keyFn: keyFn, viewFn: viewFn}

	reactive.CreateEffect(host.Owner(), func() {
		raw := items.Get()
		newItems, newKeys := dedupeByKey(raw, keyFn)

		d := reconcile.Compute(f.keys, newKeys)
		logReconcileOp(d)

		if d.Clear {
			host.ClearChildren()
			f.entries = nil
			f.keys = nil
			return
		}

		oldByKey := make(map[K]*Node, len(f.entries))
		for i, k := range f.keys {
			oldByKey[k] = f.entries[i]
		}

		nextEntries := make([]*Node, len(newItems))
		for i, item := range newItems {
			k := newKeys[i]
			if existing, ok := oldByKey[k]; ok {
				nextEntries[i] = existing
				continue
			}
			var built *Node
			host.Build(func() { built = viewFn(item) })
			nextEntries[i] = built
		}

		host.ReplaceChildren(nextEntries)
		f.entries = nextEntries
		f.keys = newKeys
	})

	return f
}

// Node returns the Kind-For host node.
func (f *ForList[T, K]) Node() *Node { return f.host }

func dedupeByKey[T any, K comparable](items []T, keyFn func(T) K) ([]T, []K) {
	seen := make(map[K]bool, len(items))
	outItems := make([]T, 0, len(items))
	outKeys := make([]K, 0, len(items))
	for _, it := range items {
		k := keyFn(it)
		if seen[k] {
			logging.Default().Warnf("component: For saw duplicate key, discarding later occurrence")
			continue
		}
		seen[k] = true
		outItems = append(outItems, it)
		outKeys = append(outKeys, k)
	}
	return outItems, outKeys
}

func logReconcileOp(d reconcile.Diff) {
	if d.Clear || len(d.Removed) > 0 || len(d.Added) > 0 || len(d.Moved) > 0 {
		logging.Default().Debugf("component: For reconcile removed=%d added=%d moved=%d clear=%v",
			len(d.Removed), len(d.Added), len(d.Moved), d.Clear)
	}
}
