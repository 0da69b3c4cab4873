// Package router is a component-tree-aware router: routes are pattern
// strings matched against a path, and the current route is held in a
// reactive signal, so navigation is just a signal write that fans out
// through the normal effect graph to whatever view reads it.
package router

import (
	"fmt"
	"regexp"
	"strings"
)

// SegmentKind classifies one path segment of a compiled pattern.
type SegmentKind int

const (
	SegmentStatic SegmentKind = iota
	SegmentParam
	SegmentWildcard
)

// Segment is one "/"-delimited piece of a route pattern.
type Segment struct {
	Kind  SegmentKind
	Name  string // param name, for SegmentParam/SegmentWildcard
	Value string // literal text, for SegmentStatic
}

// Pattern is a compiled route pattern, e.g. "/users/:id" or "/files/*rest".
type Pattern struct {
	raw      string
	segments []Segment
	regex    *regexp.Regexp
}

// Compile parses path into a Pattern. ":name" marks a required param
// segment, "*name" marks a trailing wildcard that captures the rest of the
// path.
func Compile(path string) (*Pattern, error) {
	if path == "" || !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("router: pattern %q must start with /", path)
	}
	if path == "/" {
		return &Pattern{raw: path, regex: regexp.MustCompile(`^/$`)}, nil
	}

	trimmed := strings.TrimSuffix(path, "/")
	parts := strings.Split(trimmed, "/")[1:]

	var segs []Segment
	var b strings.Builder
	b.WriteString("^")
	for i, p := range parts {
		b.WriteString("/")
		switch {
		case strings.HasPrefix(p, ":"):
			name := p[1:]
			segs = append(segs, Segment{Kind: SegmentParam, Name: name})
			b.WriteString(fmt.Sprintf("(?P<%s>[^/]+)", name))
		case strings.HasPrefix(p, "*"):
			name := p[1:]
			if i != len(parts)-1 {
				return nil, fmt.Errorf("router: wildcard segment %q must be last in %q", p, path)
			}
			segs = append(segs, Segment{Kind: SegmentWildcard, Name: name})
			b.WriteString(fmt.Sprintf("(?P<%s>.*)", name))
		default:
			segs = append(segs, Segment{Kind: SegmentStatic, Value: p})
			b.WriteString(regexp.QuoteMeta(p))
		}
	}
	b.WriteString("$")

	return &Pattern{raw: path, segments: segs, regex: regexp.MustCompile(b.String())}, nil
}

// Match reports whether path satisfies the pattern, returning any captured
// params on success.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/"
	}
	m := p.regex.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(p.segments))
	for i, name := range p.regex.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = m[i]
	}
	return params, true
}

// String returns the pattern's source text.
func (p *Pattern) String() string { return p.raw }
