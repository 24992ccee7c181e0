package reddit

import (
	"net/http"

	"reddit-mcp/backend/pkg/config"

	"go.uber.org/zap"
)

// ConfigFrom maps application configuration onto client configuration.
func ConfigFrom(cfg *config.Config, log *zap.Logger) Config {
	return Config{
		ClientID:          cfg.ClientID,
		ClientSecret:      cfg.ClientSecret,
		Username:          cfg.RedditUsername,
		Password:          cfg.RedditPassword,
		RedirectURL:       cfg.RedirectURL,
		UserAgent:         cfg.UserAgent,
		AuthBaseURL:       cfg.AuthBaseURL,
		APIBaseURL:        cfg.APIBaseURL,
		RequestsPerMinute: cfg.RequestsPerMinute,
		RateLimitBurst:    cfg.RateLimitBurst,
		HTTPClient:        &http.Client{Timeout: cfg.HTTPTimeout()},
		Logger:            log,
	}
}
