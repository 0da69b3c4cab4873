package component

// Builder provides a fluent API for assembling a node: chain property
// bindings, children and handlers, then call Build to return the assembled
// node.
//
// Example:
//
//	btn := BindStatic(NewBuilder(KindButton), TextContent("Click me")).
//	    On(EventClick, func() { setCount.Set(count.GetUntracked() + 1) }).
//	    Build()
type Builder struct {
	node     *Node
	required []required
}

// NewBuilder starts building a node of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{node: New(kind)}
}

// NewCustomBuilder starts building a Kind-Custom node tagged with name.
func NewCustomBuilder(name string) *Builder {
	return &Builder{node: Custom(name)}
}

// BindStatic writes a constant property value once, with no effect created.
func BindStatic[P any](b *Builder, v P) *Builder {
	Bind(b.node, Static(v))
	return b
}

// On registers a 0-arg handler for kind.
func (b *Builder) On(kind EventKind, fn func()) *Builder {
	b.node.On(kind, fn)
	return b
}

// OnEvent registers a 1-arg handler for kind.
func (b *Builder) OnEvent(kind EventKind, fn func(Event)) *Builder {
	b.node.OnEvent(kind, fn)
	return b
}

// Child appends an already-built child node.
func (b *Builder) Child(c *Node) *Builder {
	b.node.AddChild(c)
	return b
}

// Children appends all given child nodes, in order.
func (b *Builder) Children(cs ...*Node) *Builder {
	for _, c := range cs {
		b.node.AddChild(c)
	}
	return b
}

// Disabled marks the node as non-interactive.
func (b *Builder) Disabled(v bool) *Builder {
	Insert(b.node, Disabled(v))
	b.node.Disabled = v
	return b
}

// Setup runs fn with the node's owner current, so reactive wiring inside fn
// (signals, effects, bindings, child construction) is scoped to this node
// and torn down when it unmounts.
func (b *Builder) Setup(fn func(n *Node)) *Builder {
	b.node.Build(func() { fn(b.node) })
	return b
}

// Build finalizes and returns the assembled node.
func (b *Builder) Build() *Node {
	return b.node
}

// Text builds a Kind-Text leaf bound to a reactive or static content value.
func Text(content Value[TextContent]) *Node {
	n := New(KindText)
	n.AcceptsPointer = false
	Bind(n, content)
	return n
}

// Button builds a Kind-Button leaf with a label and a click handler.
func Button(label Value[TextContent], onClick func()) *Node {
	n := New(KindButton)
	n.AcceptsPointer = true
	n.AcceptsFocus = true
	Bind(n, label)
	if onClick != nil {
		n.On(EventClick, onClick)
	}
	return n
}

// Flex builds a Kind-Flex container with the given direction, gap and
// children.
func Flex(direction FlexDirection, gap FlexGap, children ...*Node) *Node {
	n := New(KindFlex)
	Insert(n, direction)
	Insert(n, gap)
	for _, c := range children {
		n.AddChild(c)
	}
	n.MarkDirty()
	return n
}

// TextInput builds a Kind-TextInput leaf bound to a reactive value and
// placeholder.
func TextInput(value Value[TextContent], placeholder Value[Placeholder]) *Node {
	n := New(KindTextInput)
	n.AcceptsPointer = true
	n.AcceptsFocus = true
	Bind(n, value)
	Bind(n, placeholder)
	return n
}

// Checkbox builds a Kind-Checkbox leaf bound to a reactive checked state.
func Checkbox(label Value[TextContent], checked Value[Checked]) *Node {
	n := New(KindCheckbox)
	n.AcceptsPointer = true
	n.AcceptsFocus = true
	Bind(n, label)
	Bind(n, checked)
	return n
}
