package tools

import (
	"context"
	"fmt"

	"reddit-mcp/backend/internal/adapter"
	"reddit-mcp/backend/internal/reddit"
	apperrors "reddit-mcp/backend/pkg/errors"
	"reddit-mcp/backend/pkg/logger"

	"go.uber.org/zap"
)

// RedditClient is the subset of *reddit.Client the tools call
type RedditClient interface {
	FetchAccessToken(ctx context.Context) (*reddit.AccessTokenResponse, error)
	SearchSubredditNames(ctx context.Context, params reddit.SearchSubredditNamesParams, accessToken string) (*reddit.SearchSubredditNamesResponse, error)
	AuthorizeURL(params reddit.AuthorizeParams) (*reddit.Authorization, error)
}

// Executor handles tool execution
type Executor struct {
	reddit RedditClient
	logger *zap.Logger
}

// NewExecutor creates a new tool executor
func NewExecutor(client RedditClient) *Executor {
	return &Executor{
		reddit: client,
		logger: logger.Get(),
	}
}

// SetLogger replaces the executor's logger
func (e *Executor) SetLogger(l *zap.Logger) {
	e.logger = l
}

// Execute runs a tool call and returns the result
func (e *Executor) Execute(ctx context.Context, toolCall adapter.ToolCall) *ToolResult {
	e.logger.Debug("Executing tool",
		zap.String("tool", toolCall.Name),
		zap.String("call_id", toolCall.ID),
	)

	switch toolCall.Name {
	// Reddit Auth Tools
	case ToolGetAccessToken:
		return e.executeGetAccessToken(ctx)
	case ToolGetAuthorizeURL:
		return e.executeGetAuthorizeURL(toolCall.Arguments)

	// Reddit Search Tools
	case ToolSearchSubredditNames:
		return e.executeSearchSubredditNames(ctx, toolCall.Arguments)

	default:
		err := apperrors.NewToolNotFound(toolCall.Name)
		e.logger.Warn("Unknown tool", zap.String("tool", toolCall.Name), zap.Error(err))
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("Unknown tool: %s", err.ToolName),
		}
	}
}
