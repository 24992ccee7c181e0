package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"reddit-mcp/backend/internal/adapter"
	"reddit-mcp/backend/internal/reddit"
	"reddit-mcp/backend/internal/tools"
	"reddit-mcp/backend/pkg/config"
	"reddit-mcp/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Initialize logger
	if err := logger.Init("development", ""); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		logger.Get().Fatal("Failed to initialize logger", zap.Error(err))
	}

	log := logger.Get()
	log.Info("Starting Reddit MCP HTTP server...")

	// Initialize dependencies
	redditClient, err := reddit.New(reddit.ConfigFrom(cfg, log))
	if err != nil {
		log.Fatal("Failed to create Reddit client", zap.Error(err))
	}
	executor := tools.NewExecutor(redditClient)
	mcpServer := adapter.NewMCPServer(executor, tools.GetAllTools())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.MCPAuthToken == "" && !isLoopback(cfg.Host) {
		log.Warn("MCP endpoint is reachable from the network without authentication; set MCP_AUTH_TOKEN",
			zap.String("host", cfg.Host),
		)
	}
	router := newRouter(log, adapter.HTTPHandler(mcpServer), cfg.MCPAuthToken)
	srv := newHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Server exited")
}

// newHTTPServer listens on the configured host, loopback unless overridden.
func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler,
	}
}

// newRouter mounts the MCP handler at /mcp next to a health check. A non-empty
// authToken is required as a bearer token on /mcp.
func newRouter(log *zap.Logger, mcpHandler http.Handler, authToken string) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"server":  adapter.ServerName,
			"version": adapter.ServerVersion,
		})
	})

	mcpGroup := router.Group("/mcp")
	if authToken != "" {
		mcpGroup.Use(requireBearer(authToken))
	}
	mcpGroup.Any("", gin.WrapH(mcpHandler))

	return router
}

// requireBearer rejects requests whose Authorization header does not carry token
func requireBearer(token string) gin.HandlerFunc {
	expected := []byte("Bearer " + token)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
