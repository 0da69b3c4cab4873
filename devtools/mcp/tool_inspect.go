package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerInspectTreeTool registers inspect_tree: a read-only dump of the
// bound root node's subtree, for an agent to inspect mount state without
// a terminal to look at.
func (s *Server) registerInspectTreeTool() {
	tool := &mcp.Tool{
		Name:        "inspect_tree",
		Description: "Return the current component tree rooted at the server's bound node, including dirty/hover/active/focus flags.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
	s.server.AddTool(tool, s.handleInspectTreeTool)
}

func (s *Server) handleInspectTreeTool(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.currentRoot()
	if root == nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "no root node is currently bound"}},
			IsError: true,
		}, nil
	}

	snap := snapshot(root)
	body, err := json.Marshal(snap)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to marshal tree: %v", err)}},
			IsError: true,
		}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}, nil
}
