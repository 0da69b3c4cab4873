package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/loomkit/loom/component"
	"github.com/loomkit/loom/reactive"
)

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(&Config{}, nil); err == nil {
		t.Fatalf("expected error for empty config name")
	}
}

func TestInspectTreeToolReturnsSnapshot(t *testing.T) {
	owner := reactive.NewOwner(nil)
	var root *component.Node
	reactive.WithOwnerVoid(owner, func() {
		root = component.Text(component.Static(component.TextContent("hi")))
	})

	s, err := New(DefaultConfig(), root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := s.handleInspectTreeTool(context.Background(), &mcpsdk.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleInspectTreeTool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result.Content)
	}
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	if !ok {
		t.Fatalf("content[0] is not TextContent: %T", result.Content[0])
	}

	var snap NodeSnapshot
	if err := json.Unmarshal([]byte(text.Text), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Kind != "Text" {
		t.Fatalf("Kind = %q, want Text", snap.Kind)
	}
}

func TestInspectTreeToolErrorsWithNoRoot(t *testing.T) {
	s, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := s.handleInspectTreeTool(context.Background(), &mcpsdk.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleInspectTreeTool: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected IsError for nil root")
	}
}

func TestSchedulerStateToolReportsPendingCount(t *testing.T) {
	s, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := s.handleSchedulerStateTool(context.Background(), &mcpsdk.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleSchedulerStateTool: %v", err)
	}
	text := result.Content[0].(*mcpsdk.TextContent).Text
	if !strings.Contains(text, "pending_effects") {
		t.Fatalf("text = %q, want to contain pending_effects", text)
	}
}
