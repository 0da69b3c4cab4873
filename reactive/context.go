package reactive

// ContextKey is a type-safe key for Owner.Provide/Inject, wrapping a plain
// string with a type parameter so callers get T back instead of any.
type ContextKey[T any] struct {
	name string
}

// NewContextKey creates a typed provide/inject key. name only needs to be
// unique among keys actually compared against each other; collisions across
// unrelated keys of different T are impossible since the key's Go type
// differs.
func NewContextKey[T any](name string) ContextKey[T] {
	return ContextKey[T]{name: name}
}

// ProvideTyped stores value under key in owner's context map.
func ProvideTyped[T any](owner *Owner, key ContextKey[T], value T) {
	owner.Provide(key, value)
}

// InjectTyped looks up key starting at owner and walking parents, returning
// ok=false if no ancestor provided it.
func InjectTyped[T any](owner *Owner, key ContextKey[T]) (T, bool) {
	v, ok := owner.Inject(key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}
