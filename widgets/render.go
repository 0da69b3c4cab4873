package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomkit/loom/component"
)

// Renderer walks a component tree and produces a terminal string. It is
// stateless apart from the theme; per-node state that must survive across
// renders (a bubbles textinput model's cursor position) lives on the node
// itself, in Node.RenderCache, keyed by the node's identity.
type Renderer struct {
	Theme Theme
}

// New creates a Renderer using DefaultTheme.
func New() *Renderer {
	return &Renderer{Theme: DefaultTheme}
}

// Render produces the terminal string for node and its subtree.
func (r *Renderer) Render(node *component.Node) string {
	switch node.Kind {
	case component.KindText:
		return r.renderText(node)
	case component.KindButton:
		return r.renderButton(node)
	case component.KindFlex:
		return r.renderFlex(node)
	case component.KindTextInput:
		return r.renderTextInput(node)
	case component.KindCheckbox:
		return r.renderCheckbox(node)
	case component.KindShow, component.KindFor, component.KindCustom:
		return r.renderChildren(node, "")
	default:
		return ""
	}
}

func (r *Renderer) renderText(node *component.Node) string {
	content := component.GetOrDefault[component.TextContent](node)
	return lipgloss.NewStyle().Render(string(content))
}

func (r *Renderer) renderButton(node *component.Node) string {
	label := component.GetOrDefault[component.TextContent](node)
	disabled := component.GetOrDefault[component.Disabled](node)

	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	switch {
	case bool(disabled):
		style = style.Foreground(r.Theme.Muted)
	case node.Active:
		style = style.Foreground(r.Theme.Secondary).Bold(true)
	case node.Hovered, node.Focused:
		style = style.Foreground(r.Theme.Primary).Bold(true)
	}
	return style.Render(string(label))
}

func (r *Renderer) renderFlex(node *component.Node) string {
	direction := component.GetOrDefault[component.FlexDirection](node)
	gap := component.GetOrDefault[component.FlexGap](node)

	parts := make([]string, 0, len(node.Children()))
	for _, child := range node.Children() {
		parts = append(parts, r.Render(child))
	}

	gapStr := strings.Repeat(" ", int(gap))
	if direction == component.FlexColumn {
		lines := int(gap)
		if lines < 1 {
			lines = 1
		}
		gapStr = strings.Repeat("\n", lines)
		return lipgloss.JoinVertical(lipgloss.Left, joinWith(parts, gapStr)...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(parts, gapStr)...)
}

func joinWith(parts []string, sep string) []string {
	if sep == "" || len(parts) <= 1 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func (r *Renderer) renderChildren(node *component.Node, sep string) string {
	var b strings.Builder
	for i, child := range node.Children() {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(r.Render(child))
	}
	return b.String()
}

// textInputState is what Node.RenderCache holds for a KindTextInput node: a
// live bubbles model plus the value it was last synced from, so renderTextInput
// only pushes an update into the model when the bound value actually changed
// out from under it (e.g. programmatic reset), not on every render.
type textInputState struct {
	model     textinput.Model
	lastValue string
}

func (r *Renderer) renderTextInput(node *component.Node) string {
	placeholder := component.GetOrDefault[component.Placeholder](node)
	content := component.GetOrDefault[component.TextContent](node)

	state, ok := node.RenderCache.(*textInputState)
	if !ok {
		m := textinput.New()
		m.Placeholder = string(placeholder)
		m.SetValue(string(content))
		state = &textInputState{model: m, lastValue: string(content)}
		node.RenderCache = state
	}
	if state.lastValue != string(content) {
		state.model.SetValue(string(content))
		state.lastValue = string(content)
	}
	if node.Focused {
		state.model.Focus()
	} else {
		state.model.Blur()
	}
	return state.model.View()
}

func (r *Renderer) renderCheckbox(node *component.Node) string {
	label := component.GetOrDefault[component.TextContent](node)
	checked := component.GetOrDefault[component.Checked](node)

	mark := " "
	if bool(checked) {
		mark = "x"
	}
	box := fmt.Sprintf("[%s]", mark)
	style := lipgloss.NewStyle()
	if node.Focused {
		style = style.Foreground(r.Theme.Primary)
	}
	return style.Render(box) + " " + string(label)
}
