package component

import (
	"testing"

	"github.com/loomkit/loom/reactive"
)

func TestBindStaticWritesOnceNoEffect(t *testing.T) {
	n := New(KindText)
	n.ClearDirty()
	Bind(n, Static(TextContent("hi")))

	v, _ := Get[TextContent](n)
	if v != "hi" {
		t.Fatalf("static bind did not write value: got %q", v)
	}
	if !n.Dirty() {
		t.Fatalf("static bind did not mark dirty")
	}
}

func TestBindSignalUpdatesOnWrite(t *testing.T) {
	r, w := reactive.CreateSignal(TextContent("a"))
	n := New(KindText)
	Bind(n, FromSignal(r))

	v, _ := Get[TextContent](n)
	if v != "a" {
		t.Fatalf("initial bind value = %q, want a", v)
	}

	n.ClearDirty()
	w.Set("b")
	reactive.RunPendingEffects()

	v2, _ := Get[TextContent](n)
	if v2 != "b" {
		t.Fatalf("bound value after write = %q, want b", v2)
	}
	if !n.Dirty() {
		t.Fatalf("bind effect did not mark dirty on rerun")
	}
}

func TestBindDerivedTracksMultipleSources(t *testing.T) {
	first, setFirst := reactive.CreateSignal("Ada")
	last, setLast := reactive.CreateSignal("Lovelace")
	n := New(KindText)
	Bind(n, Derived(func() TextContent {
		return TextContent(first.Get() + " " + last.Get())
	}))

	v, _ := Get[TextContent](n)
	if v != "Ada Lovelace" {
		t.Fatalf("derived bind = %q, want 'Ada Lovelace'", v)
	}

	setFirst.Set("Grace")
	reactive.RunPendingEffects()
	v2, _ := Get[TextContent](n)
	if v2 != "Grace Lovelace" {
		t.Fatalf("derived bind after first-name write = %q, want 'Grace Lovelace'", v2)
	}

	setLast.Set("Hopper")
	reactive.RunPendingEffects()
	v3, _ := Get[TextContent](n)
	if v3 != "Grace Hopper" {
		t.Fatalf("derived bind after last-name write = %q, want 'Grace Hopper'", v3)
	}
}

func TestBindingDisposedWithOwner(t *testing.T) {
	r, w := reactive.CreateSignal(TextContent("a"))
	n := New(KindText)
	Bind(n, FromSignal(r))

	n.owner.Dispose()
	w.Set("b")
	reactive.RunPendingEffects()

	v, _ := Get[TextContent](n)
	if v != "a" {
		t.Fatalf("binding kept writing after its node's owner was disposed: got %q", v)
	}
}
