package server

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wippyai/calculator/engine"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolPress    = ToolPrefix + "press"
	ToolState    = ToolPrefix + "state"
	ToolAllClear = ToolPrefix + "all_clear"
)

// StateResult is the JSON shape every tool returns.
type StateResult struct {
	Session string   `json:"session"`
	Display string   `json:"display"`
	Pending string   `json:"pending"`
	First   string   `json:"first"`
	Phase   string   `json:"phase"`
	History []string `json:"history"`
}

func newStateResult(id string, st engine.State) StateResult {
	return StateResult{
		Session: id,
		Display: st.Display,
		Pending: string(st.Pending),
		First:   st.First,
		Phase:   st.Phase().String(),
		History: st.History.Items(),
	}
}

// stateToolResult renders st as an indented JSON text result.
func stateToolResult(id string, st engine.State) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(newStateResult(id, st), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
