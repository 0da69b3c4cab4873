// Package tea adapts a loom component tree to bubbletea: it implements
// tea.Model by driving loom.Tick() on every message, translating key
// presses into component events on the currently-focused node, and
// delegating rendering to package widgets.
package tea

import (
	"time"

	teabubble "github.com/charmbracelet/bubbletea"

	"github.com/loomkit/loom"
	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
	"github.com/loomkit/loom/widgets"
)

const defaultTickInterval = 50 * time.Millisecond

// tickMsg drives the UI loop independent of input: bubbletea delivers it on
// a fixed schedule so effects scheduled by async task completions (which
// arrive with no accompanying key/mouse event) still get drained promptly.
type tickMsg struct{}

// Model wraps a loom root node as a tea.Model. Build the tree and its
// owner first (inside reactive.WithOwnerVoid), then pass the root node in.
type Model struct {
	root     *component.Node
	owner    *reactive.Owner
	renderer *widgets.Renderer
	focused  *component.Node
	width    int
	height   int
}

// New wraps root, owned by owner, for bubbletea. renderer may be nil to use
// widgets.New()'s default theme.
func New(owner *reactive.Owner, root *component.Node, renderer *widgets.Renderer) *Model {
	if renderer == nil {
		renderer = widgets.New()
	}
	return &Model{root: root, owner: owner, renderer: renderer}
}

// Init ticks once so the tree's initial effects run, then starts the
// recurring tick.
func (m *Model) Init() teabubble.Cmd {
	loom.Tick()
	return tickCmd()
}

func tickCmd() teabubble.Cmd {
	return teabubble.Tick(tickInterval, func(time.Time) teabubble.Msg { return tickMsg{} })
}

// tickInterval is a var, not a const, so tests can shrink it.
var tickInterval = defaultTickInterval

func (m *Model) Update(msg teabubble.Msg) (teabubble.Model, teabubble.Cmd) {
	switch msg := msg.(type) {
	case teabubble.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case teabubble.KeyMsg:
		m.dispatchKey(msg)
	case teabubble.MouseMsg:
		m.dispatchMouse(msg)
	}

	loom.Tick()

	if _, ok := msg.(tickMsg); ok {
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	return m.renderer.Render(m.root)
}

// dispatchKey routes a key message to the focused node, if any, as an
// EventKeyDown with both the raw key string and, for Enter, an EventClick
// (terminal UIs conventionally activate the focused control with Enter).
func (m *Model) dispatchKey(msg teabubble.KeyMsg) {
	target := m.focused
	if target == nil {
		return
	}
	target.Dispatch(component.Event{Kind: component.EventKeyDown, Key: msg.String()})
	if msg.Type == teabubble.KeyEnter {
		target.Dispatch(component.Event{Kind: component.EventClick})
	}
}

// dispatchMouse translates a left click into EventClick against the
// currently-focused node, wherever on screen the click landed; hit-testing
// is the host application's job since it depends on the layout engine, so
// the focused node is only a minimal default. Hosts with a layout tree
// should hit-test themselves and call node.Dispatch directly instead of
// relying on this.
func (m *Model) dispatchMouse(msg teabubble.MouseMsg) {
	if m.focused == nil {
		return
	}
	if msg.Type == teabubble.MouseLeft {
		m.focused.Dispatch(component.Event{Kind: component.EventClick, X: msg.X, Y: msg.Y})
	}
}

// Focus sets the node that receives key/mouse events until the next Focus
// call; this is the adapter's "which node is focused" story until a full
// layout-driven hit-test exists.
func (m *Model) Focus(n *component.Node) {
	if m.focused != nil {
		m.focused.Dispatch(component.Event{Kind: component.EventBlur})
	}
	m.focused = n
	if n != nil {
		n.Dispatch(component.Event{Kind: component.EventFocus})
	}
}
