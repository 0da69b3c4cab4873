package component

import (
	"reflect"

	"github.com/loomkit/loom/reactive"
)

// Kind tags the shape of a component node. Custom nodes (host-defined
// composites) carry their distinguishing name out of band in CustomName.
type Kind int

const (
	KindText Kind = iota
	KindButton
	KindFlex
	KindTextInput
	KindNumberInput
	KindCheckbox
	KindRadio
	KindShow
	KindFor
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindButton:
		return "Button"
	case KindFlex:
		return "Flex"
	case KindTextInput:
		return "TextInput"
	case KindNumberInput:
		return "NumberInput"
	case KindCheckbox:
		return "Checkbox"
	case KindRadio:
		return "Radio"
	case KindShow:
		return "Show"
	case KindFor:
		return "For"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ScrollState tracks a scrollable node's viewport against its content.
type ScrollState struct {
	OffsetX, OffsetY                 int
	ContentWidth, ContentHeight      int
	ContainerWidth, ContainerHeight  int
}

// Node is a retained component node: spec §4.6's "typed node with property
// map, children, handlers, dirty bit, render/layout cache handles".
type Node struct {
	ID         string
	Kind       Kind
	CustomName string

	owner *reactive.Owner

	props    map[reflect.Type]any
	children []*Node
	parent   *Node

	handlers map[EventKind]Handler

	dirty bool

	Hovered        bool
	Active         bool
	Focused        bool
	Disabled       bool
	AcceptsPointer bool
	AcceptsFocus   bool

	LayoutHandle any
	RenderCache  any
	Scroll       ScrollState

	mounted            bool
	mountHooks         []func()
	beforeUnmountHooks []func()
	unmountHooks       []func()
}

// New creates a node of the given kind, scoped under a freshly-created
// owner whose parent is the current owner. New itself does not make that
// owner current; Build does, for the duration of its closure, per spec §4.5
// ("building a component establishes its owner as current during child
// construction").
func New(kind Kind) *Node {
	parentOwner := reactive.CurrentOwner()
	n := &Node{
		ID:       DefaultIDGenerator.Next(),
		Kind:     kind,
		owner:    reactive.NewOwner(parentOwner),
		props:    make(map[reflect.Type]any),
		handlers: make(map[EventKind]Handler),
	}
	return n
}

// Custom creates a Kind-Custom node tagged with name, for host-defined
// composite widgets that don't map to one of the built-in kinds.
func Custom(name string) *Node {
	n := New(KindCustom)
	n.CustomName = name
	return n
}

// Owner returns the node's owner scope. Bindings (C7) and nested component
// construction run with this as the current owner.
func (n *Node) Owner() *reactive.Owner { return n.owner }

// Build runs fn with n's owner current, so any signals/effects/child nodes
// fn creates are scoped to n and disposed when n unmounts.
func (n *Node) Build(fn func()) {
	reactive.WithOwnerVoid(n.owner, fn)
}

// Dirty reports whether n has been mutated since the last clean transition.
func (n *Node) Dirty() bool { return n.dirty }

// ClearDirty is called by the layout/render pass upon consuming a dirty
// node; spec §4.6: "Reads by the layout/render pass clear the dirty bit
// upon consumption."
func (n *Node) ClearDirty() { n.dirty = false }

// MarkDirty sets n's dirty bit and every ancestor's, up to the root.
func (n *Node) MarkDirty() {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.dirty {
			break
		}
		cur.dirty = true
	}
}

// MarkNeedsLayout invalidates the layout handle and marks n dirty (via
// MarkDirty); a layout engine owns how it reacts to a nil handle.
func (n *Node) MarkNeedsLayout() {
	n.LayoutHandle = nil
	n.MarkDirty()
}

// Parent returns n's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns n's children in order. Callers must not mutate the
// returned slice; use AddChild/RemoveChild/ClearChildren/ReplaceChildren.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child and sets its parent, preserving the
// parent-consistency invariant.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChildNoMark(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	n.MarkDirty()
	child.fireMounted()
}

// RemoveChild removes the child with the given id, if present, and disposes
// its owner scope.
func (n *Node) RemoveChild(id string) {
	for i, c := range n.children {
		if c.ID == id {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			c.unmount()
			n.MarkDirty()
			return
		}
	}
}

func (n *Node) removeChildNoMark(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// ClearChildren disposes and removes every child.
func (n *Node) ClearChildren() {
	for _, c := range n.children {
		c.parent = nil
		c.unmount()
	}
	n.children = nil
	n.MarkDirty()
}

// ReplaceChildren atomically swaps n's child vector for next, disposing any
// previous child not present in next and adopting every node in next.
func (n *Node) ReplaceChildren(next []*Node) {
	nextSet := make(map[*Node]bool, len(next))
	for _, c := range next {
		nextSet[c] = true
	}
	for _, old := range n.children {
		if !nextSet[old] {
			old.parent = nil
			old.unmount()
		}
	}
	for _, c := range next {
		c.parent = n
		c.fireMounted()
	}
	n.children = next
	n.MarkDirty()
}

func untrackedDispatch(fn func()) {
	reactive.UntrackedVoid(fn)
}
