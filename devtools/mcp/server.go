package mcp

import (
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

// Server wraps an mcp.Server, bound to a specific root node and owner so
// its tools can walk the live component tree and scheduler state.
type Server struct {
	server *mcp.Server
	config *Config

	mu   sync.RWMutex
	root *component.Node
}

// New creates a Server exposing root's subtree. root may be swapped later
// via SetRoot (e.g. when a router navigation remounts the tree).
func New(config *Config, root *component.Node) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("mcp: config cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("mcp: invalid config: %w", err)
	}

	impl := &mcp.Implementation{Name: config.Name, Version: config.Version}
	mcpServer := mcp.NewServer(impl, &mcp.ServerOptions{})

	s := &Server{server: mcpServer, config: config, root: root}
	s.registerTools()
	return s, nil
}

// SetRoot swaps the node the inspection tools walk.
func (s *Server) SetRoot(root *component.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
}

func (s *Server) currentRoot() *component.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Underlying returns the wrapped mcp.Server, for transports (stdio/HTTP)
// the caller wires up themselves.
func (s *Server) Underlying() *mcp.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.registerInspectTreeTool()
	s.registerSchedulerStateTool()
}

// NodeSnapshot is the JSON-serializable view of one component.Node, built
// for the inspect_tree tool's response.
type NodeSnapshot struct {
	ID       string         `json:"id"`
	Kind     string         `json:"kind"`
	Dirty    bool           `json:"dirty"`
	Hovered  bool           `json:"hovered"`
	Active   bool           `json:"active"`
	Focused  bool           `json:"focused"`
	Disabled bool           `json:"disabled"`
	Children []NodeSnapshot `json:"children"`
}

// snapshot walks node into a NodeSnapshot tree.
func snapshot(node *component.Node) NodeSnapshot {
	if node == nil {
		return NodeSnapshot{}
	}
	children := make([]NodeSnapshot, 0, len(node.Children()))
	for _, c := range node.Children() {
		children = append(children, snapshot(c))
	}
	return NodeSnapshot{
		ID:       node.ID,
		Kind:     node.Kind.String(),
		Dirty:    node.Dirty(),
		Hovered:  node.Hovered,
		Active:   node.Active,
		Focused:  node.Focused,
		Disabled: node.Disabled,
		Children: children,
	}
}

// SchedulerSnapshot reports the reactive scheduler's current queue depth.
type SchedulerSnapshot struct {
	PendingEffects int `json:"pending_effects"`
}

func schedulerSnapshot() SchedulerSnapshot {
	return SchedulerSnapshot{PendingEffects: reactive.PendingCount()}
}
