package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wippyai/calculator/session"
)

// StateTool reports the session state
type StateTool struct {
	session *session.Session
}

// NewStateTool creates a new state tool
func NewStateTool(s *session.Session) *StateTool {
	return &StateTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *StateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolState,
		mcp.WithDescription("Return the calculator display, pending operator and history without pressing keys"),
	)
}

// Handle processes the tool request
func (t *StateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return stateToolResult(t.session.ID(), t.session.State())
}

// AllClearTool resets the display, pending operator and history
type AllClearTool struct {
	session *session.Session
}

// NewAllClearTool creates a new all-clear tool
func NewAllClearTool(s *session.Session) *AllClearTool {
	return &AllClearTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *AllClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolAllClear,
		mcp.WithDescription("Press AC: reset the display to 0 and forget the pending operator and the history"),
	)
}

// Handle processes the tool request
func (t *AllClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return stateToolResult(t.session.ID(), t.session.Reset())
}
