package component

import (
	"fmt"
	"reflect"
)

// PropsValidationError reports one or more missing required properties on a
// Custom node, named by component rather than by internal type, so a host
// building a composite widget fails fast with a readable message instead of
// a nil property surfacing later inside a render or effect.
type PropsValidationError struct {
	ComponentName string
	Missing       []string
}

func (e *PropsValidationError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("component %q: missing required prop %s", e.ComponentName, e.Missing[0])
	}
	return fmt.Sprintf("component %q: missing required props %v", e.ComponentName, e.Missing)
}

// required accumulates the prop types a Builder expects to be bound before
// TryBuild succeeds, keyed by the human-readable name reported on failure.
type required struct {
	typ  reflect.Type
	name string
}

// Require declares that property P must be bound (via Bind/BindStatic/
// Insert) before TryBuild succeeds. Only meaningful on a Kind-Custom node;
// the built-in widget constructors (Text, Button, ...) already guarantee
// their own required props at the Go type level.
func Require[P any](b *Builder, name string) *Builder {
	var zero P
	b.required = append(b.required, required{typ: reflect.TypeOf(zero), name: name})
	return b
}

// TryBuild is Build with props validation: it returns a *PropsValidationError
// naming every property declared via Require that was never bound.
func (b *Builder) TryBuild() (*Node, error) {
	var missing []string
	for _, r := range b.required {
		if _, ok := b.node.props[r.typ]; !ok {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		name := b.node.CustomName
		if name == "" {
			name = b.node.Kind.String()
		}
		return nil, &PropsValidationError{ComponentName: name, Missing: missing}
	}
	return b.node, nil
}
