// Package show implements the Show conditional (spec §4.9): mounting and
// unmounting a subtree under a reactive boolean, with rapid toggling inside
// a single tick coalesced down to at most one rebuild.
package show

import (
	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

// Show holds the host node that the conditional subtree attaches to and
// beneath.
type Show struct {
	host  *component.Node
	child *component.Node
}

// New creates a Show: cond is read reactively, build constructs the subtree
// shown while cond is true. The returned node is a Kind-Show container;
// its single child (if any) is the built subtree.
func New(cond reactive.Read[bool], build func() *component.Node) *Show {
	host := component.New(component.KindShow)
	s := &Show{host: host}

	reactive.CreateEffect(host.Owner(), func() {
		visible := cond.Get()
		if visible {
			if s.child != nil {
				return // already mounted; avoid a rebuild on a redundant true
			}
			var built *component.Node
			host.Build(func() {
				built = build()
			})
			s.child = built
			host.AddChild(built)
		} else {
			if s.child == nil {
				return
			}
			host.RemoveChild(s.child.ID)
			s.child = nil
		}
	})

	return s
}

// Node returns the Kind-Show host node.
func (s *Show) Node() *component.Node { return s.host }
