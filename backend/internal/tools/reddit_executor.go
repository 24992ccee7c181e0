package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"reddit-mcp/backend/internal/reddit"
	apperrors "reddit-mcp/backend/pkg/errors"

	"go.uber.org/zap"
)

// ============================================================================
// Reddit Tool Implementations
// ============================================================================

func (e *Executor) executeGetAccessToken(ctx context.Context) *ToolResult {
	resp, err := e.reddit.FetchAccessToken(ctx)
	if err != nil {
		return &ToolResult{Success: false, Error: reddit.AccessTokenFailure(e.logger, err)}
	}

	return &ToolResult{
		Success: true,
		Data:    resp.AccessToken,
		Message: fmt.Sprintf("Token expires in %d seconds", resp.ExpiresIn),
	}
}

func (e *Executor) executeSearchSubredditNames(ctx context.Context, raw json.RawMessage) *ToolResult {
	var args struct {
		reddit.SearchSubredditNamesParams
		AccessToken string `json:"access_token"`
	}
	if err := decodeArguments(ToolSearchSubredditNames, raw, &args); err != nil {
		return &ToolResult{Success: false, Error: err.Error()}
	}

	resp, err := e.reddit.SearchSubredditNames(ctx, args.SearchSubredditNamesParams, args.AccessToken)
	if err != nil {
		e.logger.Error("Failed to search subreddit names",
			zap.Error(err),
			zap.String("query", args.Query),
		)
		return &ToolResult{Success: false, Error: err.Error()}
	}

	return &ToolResult{
		Success: true,
		Data:    resp.Names,
		Message: fmt.Sprintf("Found %d subreddits", len(resp.Names)),
	}
}

func (e *Executor) executeGetAuthorizeURL(raw json.RawMessage) *ToolResult {
	var args reddit.AuthorizeParams
	if err := decodeArguments(ToolGetAuthorizeURL, raw, &args); err != nil {
		return &ToolResult{Success: false, Error: err.Error()}
	}

	auth, err := e.reddit.AuthorizeURL(args)
	if err != nil {
		return &ToolResult{Success: false, Error: err.Error()}
	}

	return &ToolResult{Success: true, Data: auth}
}

// decodeArguments unmarshals raw tool arguments into v. Missing arguments
// leave v at its zero value.
func decodeArguments(toolName string, raw json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return apperrors.NewToolInvalidArguments(toolName, err)
	}
	return nil
}
