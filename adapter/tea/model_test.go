package tea

import (
	"testing"

	teabubble "github.com/charmbracelet/bubbletea"

	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

func TestInitRunsEffectsAndReturnsTickCmd(t *testing.T) {
	owner := reactive.NewOwner(nil)
	var root *component.Node
	reactive.WithOwnerVoid(owner, func() {
		root = component.Text(component.Static(component.TextContent("hi")))
	})
	m := New(owner, root, nil)
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init should return a tick command")
	}
}

func TestUpdateDispatchesEnterAsClickToFocusedNode(t *testing.T) {
	owner := reactive.NewOwner(nil)
	var root *component.Node
	var clicked bool
	reactive.WithOwnerVoid(owner, func() {
		root = component.Button(component.Static(component.TextContent("go")), func() { clicked = true })
	})
	m := New(owner, root, nil)
	m.Focus(root)

	_, _ = m.Update(teabubble.KeyMsg{Type: teabubble.KeyEnter})

	if !clicked {
		t.Fatalf("expected Enter on focused button to dispatch a click")
	}
}

func TestViewRendersRoot(t *testing.T) {
	owner := reactive.NewOwner(nil)
	var root *component.Node
	reactive.WithOwnerVoid(owner, func() {
		root = component.Text(component.Static(component.TextContent("rendered")))
	})
	m := New(owner, root, nil)
	if got := m.View(); got == "" {
		t.Fatalf("View() returned empty string")
	}
}
