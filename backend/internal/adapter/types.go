package adapter

import (
	"context"
	"encoding/json"
)

// Tool describes an operation the hosting agent can invoke
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition defines a function that can be called
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolCall represents one invocation received from the agent
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Text renders the result as the single string handed back to the agent.
// String data is returned as-is, anything else as indented JSON.
func (r *ToolResult) Text() string {
	if !r.Success {
		return r.Error
	}

	switch data := r.Data.(type) {
	case nil:
		return r.Message
	case string:
		return data
	default:
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return r.Message
		}
		return string(encoded)
	}
}

// Executor runs tool calls by name
type Executor interface {
	Execute(ctx context.Context, call ToolCall) *ToolResult
}
