package widgets

import (
	"strings"
	"testing"

	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

func TestRenderTextReturnsContent(t *testing.T) {
	owner := reactive.NewOwner(nil)
	reactive.WithOwnerVoid(owner, func() {
		n := component.Text(component.Static(component.TextContent("hello")))
		got := New().Render(n)
		if !strings.Contains(got, "hello") {
			t.Fatalf("Render = %q, want to contain hello", got)
		}
	})
}

func TestRenderFlexJoinsChildren(t *testing.T) {
	owner := reactive.NewOwner(nil)
	reactive.WithOwnerVoid(owner, func() {
		a := component.Text(component.Static(component.TextContent("a")))
		b := component.Text(component.Static(component.TextContent("b")))
		flex := component.Flex(component.FlexRow, 1, a, b)
		got := New().Render(flex)
		if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
			t.Fatalf("Render = %q, want both children", got)
		}
	})
}

func TestRenderCheckboxShowsMark(t *testing.T) {
	owner := reactive.NewOwner(nil)
	reactive.WithOwnerVoid(owner, func() {
		cb := component.Checkbox(component.Static(component.TextContent("agree")), component.Static(component.Checked(true)))
		got := New().Render(cb)
		if !strings.Contains(got, "x") {
			t.Fatalf("Render = %q, want checked mark", got)
		}
	})
}

func TestRenderTextInputCachesModelAcrossRenders(t *testing.T) {
	owner := reactive.NewOwner(nil)
	reactive.WithOwnerVoid(owner, func() {
		ti := component.TextInput(component.Static(component.TextContent("hi")), component.Static(component.Placeholder("type here")))
		r := New()
		r.Render(ti)
		cache1 := ti.RenderCache
		r.Render(ti)
		if ti.RenderCache != cache1 {
			t.Fatalf("RenderCache should be reused across renders, got a new instance")
		}
	})
}
