package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wippyai/calculator/errors"
	"github.com/wippyai/calculator/keypad"
	"github.com/wippyai/calculator/session"
)

// PressTool presses a sequence of keys on the session
type PressTool struct {
	session *session.Session
}

// NewPressTool creates a new press tool
func NewPressTool(s *session.Session) *PressTool {
	return &PressTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription("Press calculator keys in order and return the resulting display and history. "+
			"Keys are 0-9, 00, ., + - * / %, =, C, AC and ⌫; separate them with spaces or write them together (\"12+3=\")."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Keys to press, e.g. \"2 + 3 =\"")),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if keys == "" {
		return mcp.NewToolResultError(errors.InvalidInput(errors.PhaseTransport, "keys parameter is required").Error()), nil
	}

	labels, err := keypad.Tokenize(keys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read keys: %v", err)), nil
	}

	st, err := t.session.PressAll(labels)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press keys: %v", err)), nil
	}

	return stateToolResult(t.session.ID(), st)
}
