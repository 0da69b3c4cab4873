package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerSchedulerStateTool registers scheduler_state: the reactive
// scheduler's pending-effect queue depth, useful for an agent diagnosing a
// stalled or looping UI.
func (s *Server) registerSchedulerStateTool() {
	tool := &mcp.Tool{
		Name:        "scheduler_state",
		Description: "Return the reactive scheduler's current pending-effect queue depth.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
	s.server.AddTool(tool, s.handleSchedulerStateTool)
}

func (s *Server) handleSchedulerStateTool(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(schedulerSnapshot())
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to marshal scheduler state: %v", err)}},
			IsError: true,
		}, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}, nil
}
