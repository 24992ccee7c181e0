package tools

import (
	"reddit-mcp/backend/internal/adapter"
)

// GetRedditTools returns Reddit API tools
func GetRedditTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetAccessToken,
				Description: "Fetch a Reddit OAuth access token for the configured account using the password grant. Pass the returned token to tools that take an access_token.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolSearchSubredditNames,
				Description: "List subreddit names that begin with a query string.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "Query string of subreddit names to search",
						},
						"exact": map[string]interface{}{
							"type":        "boolean",
							"description": "Only return an exact match for the query",
						},
						"include_over_18": map[string]interface{}{
							"type":        "boolean",
							"description": "Include subreddits marked NSFW",
						},
						"include_unadvertisable": map[string]interface{}{
							"type":        "boolean",
							"description": "Include subreddits that have hide_ads set",
						},
						"type_ahead": map[string]interface{}{
							"type":        "boolean",
							"description": "Treat the query as type-ahead input (sent to Reddit as typeahead_active)",
						},
						"access_token": map[string]interface{}{
							"type":        "string",
							"description": "Access token returned by get_access_token",
						},
					},
					"required": []string{"query", "access_token"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetAuthorizeURL,
				Description: "Build the Reddit authorization URL a user opens to grant this application access. Makes no network call.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"state": map[string]interface{}{
							"type":        "string",
							"description": "Opaque value echoed back to the redirect URL (random if omitted)",
						},
						"duration": map[string]interface{}{
							"type":        "string",
							"enum":        []string{"temporary", "permanent"},
							"description": "Token lifetime (default: temporary)",
						},
						"scopes": map[string]interface{}{
							"type":        "array",
							"items":       map[string]interface{}{"type": "string"},
							"description": "OAuth scopes to request (default: identity, read)",
						},
					},
				},
			},
		},
	}
}
