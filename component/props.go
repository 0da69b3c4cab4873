package component

import "reflect"

// Property types are distinct nominal wrappers so the same underlying Go
// type (string, float64, ...) can back several unrelated properties without
// colliding in a node's property map, which is keyed by reflect.Type.

// TextContent is the text shown by Text, Button, TextInput and similar leaf
// widgets.
type TextContent string

// FlexGap is the spacing between a Flex container's children, in cells.
type FlexGap float64

// FlexDirection selects row or column layout for a Flex container.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Placeholder is the dimmed hint text shown by an empty TextInput.
type Placeholder string

// Checked is the boolean state of a Checkbox or a single Radio option.
type Checked bool

// Disabled marks a widget as non-interactive; dispatch must not deliver
// pointer or key events to a disabled node.
type Disabled bool

// MinValue and MaxValue bound a NumberInput.
type MinValue float64
type MaxValue float64

// propertyDefaults holds the static, property-defined default value
// returned by GetOrDefault when a node has never had that property set.
var propertyDefaults = map[reflect.Type]func() any{}

// RegisterDefault installs the static default for property type P. Widget
// constructors call this from an init() so GetOrDefault never needs a
// present-but-zero-valued entry in the property map.
func RegisterDefault[P any](factory func() P) {
	var zero P
	propertyDefaults[reflect.TypeOf(zero)] = func() any { return factory() }
}

func init() {
	RegisterDefault(func() TextContent { return "" })
	RegisterDefault(func() FlexGap { return 0 })
	RegisterDefault(func() FlexDirection { return FlexRow })
	RegisterDefault(func() Placeholder { return "" })
	RegisterDefault(func() Checked { return false })
	RegisterDefault(func() Disabled { return false })
	RegisterDefault(func() MinValue { return 0 })
	RegisterDefault(func() MaxValue { return 0 })
}

// Insert replaces the node's prior value of P, if any.
func Insert[P any](n *Node, v P) {
	n.props[reflect.TypeOf(v)] = v
}

// Get retrieves the node's current value of P, if present.
func Get[P any](n *Node) (P, bool) {
	var zero P
	raw, ok := n.props[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return raw.(P), true
}

// GetOrDefault retrieves P, falling back to its registered static default
// (or P's Go zero value, if no default was registered).
func GetOrDefault[P any](n *Node) P {
	if v, ok := Get[P](n); ok {
		return v
	}
	var zero P
	if f, ok := propertyDefaults[reflect.TypeOf(zero)]; ok {
		return f().(P)
	}
	return zero
}
