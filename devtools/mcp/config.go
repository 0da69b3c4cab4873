// Package mcp exposes loom's live component tree and scheduler state to AI
// agents via the Model Context Protocol (github.com/modelcontextprotocol/go-sdk),
// mirroring what a terminal devtools overlay would show a human: the node
// tree, dirty bits, and pending-effect count.
package mcp

import "fmt"

// Config controls the MCP server's identity and read-only flag; it has no
// transport setting.
type Config struct {
	Name    string
	Version string
	// ReadOnly disables any future write-capable tool (e.g. forcing a
	// signal write from an agent); true by default since loom has no
	// signal registry to safely target one from outside the tree.
	ReadOnly bool
}

// DefaultConfig returns a read-only stdio-appropriate configuration.
func DefaultConfig() *Config {
	return &Config{Name: "loom-devtools", Version: "0.1.0", ReadOnly: true}
}

// Validate checks Config for obviously invalid values.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("mcp: Config.Name must not be empty")
	}
	return nil
}
