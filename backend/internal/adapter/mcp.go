package adapter

import (
	"context"
	"net/http"

	"reddit-mcp/backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	ServerName    = "reddit-mcp"
	ServerVersion = "v0.1.0"

	// Instructions is reported to the agent during initialization
	Instructions = "This server exposes parts of the Reddit API as tools. " +
		"Call get_access_token first, then pass the returned token as access_token " +
		"to search_subreddit_names. Tokens are not cached by the server."
)

// NewMCPServer registers every tool with an MCP server that dispatches calls
// to executor. Adding tools is what advertises the tools capability.
func NewMCPServer(executor Executor, tools []Tool) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Instructions: Instructions,
	})

	log := logger.Get()
	for _, tool := range tools {
		server.AddTool(&mcp.Tool{
			Name:        tool.Function.Name,
			Description: tool.Function.Description,
			InputSchema: tool.Function.Parameters,
		}, toolHandler(executor, tool.Function.Name, log))
	}

	return server
}

func toolHandler(executor Executor, name string, log *zap.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		call := ToolCall{
			ID:   uuid.NewString(),
			Name: name,
		}
		if req.Params != nil {
			call.Arguments = req.Params.Arguments
		}

		result := executor.Execute(ctx, call)
		if !result.Success {
			log.Warn("Tool call failed",
				zap.String("tool", name),
				zap.String("call_id", call.ID),
				zap.String("error", result.Error),
			)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text()}},
			IsError: !result.Success,
		}, nil
	}
}

// ServeStdio runs server over stdin/stdout until ctx is done or the client hangs up.
func ServeStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler exposes server over the MCP streamable HTTP transport.
func HTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
