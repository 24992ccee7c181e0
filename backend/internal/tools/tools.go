package tools

import (
	"reddit-mcp/backend/internal/adapter"
)

// Tool names - Reddit Auth Tools
const (
	ToolGetAccessToken  = "get_access_token"
	ToolGetAuthorizeURL = "get_authorize_url"
)

// Tool names - Reddit Search Tools
const (
	ToolSearchSubredditNames = "search_subreddit_names"
)

// ToolResult is the outcome of a single tool call
type ToolResult = adapter.ToolResult

// GetAllTools returns all available tools for the agent
func GetAllTools() []adapter.Tool {
	tools := []adapter.Tool{}

	// Reddit Tools
	tools = append(tools, GetRedditTools()...)

	return tools
}
