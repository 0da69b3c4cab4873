package component

// EventKind enumerates the input events a node can register a handler for.
// Decoding terminal input into these and picking the right dispatch target
// is the adapter's job (loom/adapter/tea); the core only stores and invokes
// handlers.
type EventKind int

const (
	EventClick EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventPointerEnter
	EventPointerLeave
	EventScroll
	EventKeyDown
	EventKeyUp
	EventFocus
	EventBlur
	EventInput
	EventChange
)

// Event is the payload passed to 1-arg and 2-arg handlers. Fields are
// populated by the adapter according to Kind; fields irrelevant to a given
// Kind are left zero.
type Event struct {
	Kind   EventKind
	X, Y   int
	Key    string
	Text   string
	DeltaX int
	DeltaY int
}

// DispatchContext accompanies 2-arg handlers, giving them a narrow surface
// onto the owning node without exposing the whole tree.
type DispatchContext struct {
	Target *Node
}

// Handler is stored uniformly regardless of declared arity; dispatch_event
// inspects which field is non-nil and calls accordingly.
type Handler struct {
	Arity0 func()
	Arity1 func(Event)
	Arity2 func(Event, DispatchContext)
}

// On registers a handler of arity 0 for kind, replacing any prior handler
// for the same kind.
func (n *Node) On(kind EventKind, fn func()) {
	n.handlers[kind] = Handler{Arity0: fn}
}

// OnEvent registers a handler of arity 1.
func (n *Node) OnEvent(kind EventKind, fn func(Event)) {
	n.handlers[kind] = Handler{Arity1: fn}
}

// OnEventCtx registers a handler of arity 2.
func (n *Node) OnEventCtx(kind EventKind, fn func(Event, DispatchContext)) {
	n.handlers[kind] = Handler{Arity2: fn}
}

// Handler looks up the registered handler for kind.
func (n *Node) Handler(kind EventKind) (Handler, bool) {
	h, ok := n.handlers[kind]
	return h, ok
}

// Dispatch invokes the handler registered for ev.Kind, if any, inside an
// untracked scope per spec §5 ("dispatch_event... calls the matching
// handler inside an untracked scope"). It also updates the node's
// hover/active/focus flags for the event kinds that carry that meaning. A
// node with Disabled set receives no click, pointer or key events: they are
// dropped before any flag changes or handler runs.
func (n *Node) Dispatch(ev Event) {
	if n.Disabled {
		switch ev.Kind {
		case EventClick, EventPointerDown, EventPointerUp, EventPointerMove,
			EventPointerEnter, EventPointerLeave, EventKeyDown, EventKeyUp:
			return
		}
	}
	switch ev.Kind {
	case EventPointerEnter:
		n.Hovered = true
	case EventPointerLeave:
		n.Hovered = false
	case EventPointerDown:
		n.Active = true
	case EventPointerUp:
		n.Active = false
	case EventFocus:
		n.Focused = true
	case EventBlur:
		n.Focused = false
	}

	h, ok := n.handlers[ev.Kind]
	if !ok {
		return
	}
	untrackedDispatch(func() {
		switch {
		case h.Arity2 != nil:
			h.Arity2(ev, DispatchContext{Target: n})
		case h.Arity1 != nil:
			h.Arity1(ev)
		case h.Arity0 != nil:
			h.Arity0()
		}
	})
}
