package router

import (
	"fmt"

	"github.com/loomkit/loom/logging"
	"github.com/loomkit/loom/reactive"
)

// Route is a resolved match: the pattern that matched, the path that was
// navigated to, and any captured params.
type Route struct {
	Pattern *Pattern
	Name    string
	Path    string
	Params  map[string]string
}

// Guard inspects an in-flight navigation and decides whether it proceeds or
// is redirected. Calling next(path) with a non-empty path redirects to path;
// calling next("") or not calling next at all lets navigation proceed. A
// guard has no way to cancel a navigation.
type Guard func(to, from *Route, next func(redirectPath string))

// entry is one registered route.
type entry struct {
	name    string
	pattern *Pattern
}

// Router holds the route table and the current route as a signal, so
// reading Current().Get() inside an effect re-runs that effect on every
// navigation (spec-style: navigation is nothing but a signal write).
type Router struct {
	entries []entry
	guards  []Guard

	current reactive.Read[*Route]
	setCur  reactive.Write[*Route]
}

// New creates an empty router.
func New() *Router {
	r := &Router{}
	r.current, r.setCur = reactive.CreateSignal[*Route](nil)
	return r
}

// Register adds a named route pattern. Panics on an invalid pattern, since
// route tables are built once at startup.
func (r *Router) Register(name, pattern string) {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("router: register %q: %v", name, err))
	}
	r.entries = append(r.entries, entry{name: name, pattern: p})
}

// Use appends a navigation guard, run in registration order before a
// navigation's target route is committed.
func (r *Router) Use(g Guard) {
	r.guards = append(r.guards, g)
}

// Current is the reactive current route; nil before the first navigation.
func (r *Router) Current() reactive.Read[*Route] {
	return r.current
}

// match resolves path against the registered patterns in registration
// order, first match wins.
func (r *Router) match(path string) (*Route, bool) {
	for _, e := range r.entries {
		if params, ok := e.pattern.Match(path); ok {
			return &Route{Pattern: e.pattern, Name: e.name, Path: path, Params: params}, true
		}
	}
	return nil, false
}

// Navigate resolves path and, if guards allow it, writes it to the current
// route signal — triggering every effect that reads Current(). A guard
// redirect re-enters Navigate with the new path instead of committing.
func (r *Router) Navigate(path string) error {
	to, ok := r.match(path)
	if !ok {
		return fmt.Errorf("router: no route matches %q", path)
	}
	from := r.current.GetUntracked()

	for _, g := range r.guards {
		var redirect string
		var redirected bool
		g(to, from, func(target string) {
			redirect = target
			redirected = target != ""
		})
		if redirected {
			logging.Default().Debugf("router: guard redirected %q -> %q", path, redirect)
			return r.Navigate(redirect)
		}
	}

	r.setCur.Set(to)
	return nil
}
