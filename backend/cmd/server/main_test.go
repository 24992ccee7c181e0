package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reddit-mcp/backend/internal/adapter"
	"reddit-mcp/backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newRouter(zap.NewNop(), http.NotFoundHandler(), "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, adapter.ServerName, response["server"])
}

func TestMCPRoute_DelegatesAllMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var methods []string
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusAccepted)
	})
	router := newRouter(zap.NewNop(), mcpHandler, "")

	for _, method := range []string{http.MethodPost, http.MethodGet, http.MethodDelete} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/mcp", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusAccepted, w.Code)
	}

	assert.Equal(t, []string{http.MethodPost, http.MethodGet, http.MethodDelete}, methods)
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	router := newRouter(zap.New(core), http.NotFoundHandler(), "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health?check=1", nil)
	router.ServeHTTP(w, req)

	entries := logs.FilterMessage("HTTP Request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "/health?check=1", entries[0].ContextMap()["path"])
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	}
}

func TestNewHTTPServer_BindsLoopbackByDefault(t *testing.T) {
	t.Setenv("REDDIT_MCP_SETTINGS", "does-not-exist.yaml")
	for _, key := range []string{"HOST", "PORT"} {
		t.Setenv(key, "")
	}
	for key, value := range map[string]string{
		"CLIENT_ID":       "id",
		"CLIENT_SECRET":   "secret",
		"REDDIT_USERNAME": "user",
		"REDDIT_PASSWORD": "pass",
		"REDIRECT_URL":    "http://localhost/cb",
	} {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	srv := newHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr)
}

func TestMCPRoute_RequiresBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var delegated int
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delegated++
		w.WriteHeader(http.StatusAccepted)
	})
	router := newRouter(zap.NewNop(), mcpHandler, "shared-secret")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", "Basic shared-secret", http.StatusUnauthorized},
		{"valid token", "Bearer shared-secret", http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
	assert.Equal(t, 1, delegated)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

type tokenExecutor struct{}

func (tokenExecutor) Execute(ctx context.Context, call adapter.ToolCall) *adapter.ToolResult {
	return &adapter.ToolResult{Success: true, Data: "live-token"}
}

// bearerTransport adds a fixed Authorization header to every request.
type bearerTransport struct {
	token string
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return http.DefaultTransport.RoundTrip(req)
}

func TestMCPRoute_AnonymousClientCannotCallTools(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tools := []adapter.Tool{{
		Type: "function",
		Function: adapter.FunctionDefinition{
			Name:        "get_access_token",
			Description: "Fetch a token",
			Parameters:  map[string]interface{}{"type": "object", "properties": map[string]interface{}{}},
		},
	}}
	mcpServer := adapter.NewMCPServer(tokenExecutor{}, tools)
	srv := httptest.NewServer(newRouter(zap.NewNop(), adapter.HTTPHandler(mcpServer), "shared-secret"))
	defer srv.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)

	_, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: srv.URL + "/mcp"}, nil)
	require.Error(t, err)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint:   srv.URL + "/mcp",
		HTTPClient: &http.Client{Transport: bearerTransport{token: "shared-secret"}},
	}, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: "get_access_token"})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "live-token", res.Content[0].(*mcp.TextContent).Text)
}

func TestIsLoopback(t *testing.T) {
	assert.True(t, isLoopback("127.0.0.1"))
	assert.True(t, isLoopback("::1"))
	assert.True(t, isLoopback("localhost"))
	assert.False(t, isLoopback("0.0.0.0"))
	assert.False(t, isLoopback(""))
}
