// Package reddit is a thin client for the handful of Reddit endpoints the MCP
// tools expose: the password-grant token endpoint, subreddit name search and
// the OAuth authorization URL.
package reddit

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	apperrors "reddit-mcp/backend/pkg/errors"
	"reddit-mcp/backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultAuthBaseURL hosts the token and authorize endpoints
	DefaultAuthBaseURL = "https://www.reddit.com/"
	// DefaultAPIBaseURL hosts every bearer-authenticated endpoint
	DefaultAPIBaseURL = "https://oauth.reddit.com/"
	// DefaultUserAgent follows Reddit's platform:app:version (by /u/user) format
	DefaultUserAgent = "reddit:mcp:v1 (by /u/boringly_boring)"

	DefaultRequestsPerMinute = 60
	DefaultRateLimitBurst    = 10
	secondsPerMinute         = 60.0

	accessTokenPath       = "api/v1/access_token"
	authorizePath         = "api/v1/authorize"
	searchRedditNamesPath = "api/search_reddit_names"
)

var errMissingHost = errors.New("missing scheme or host")

// Config holds everything needed to build a Client.
type Config struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	RedirectURL  string

	// Optional. Defaults apply when empty.
	UserAgent   string
	AuthBaseURL string
	APIBaseURL  string

	// RequestsPerMinute paces outbound calls. Zero or negative uses DefaultRequestsPerMinute.
	RequestsPerMinute float64
	// RateLimitBurst allows short spikes. Zero or negative uses DefaultRateLimitBurst.
	RateLimitBurst int

	// HTTPClient defaults to a client without a timeout.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to Reddit. It holds no per-call state and is safe for
// concurrent use once built.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	username     string
	password     string
	redirectURL  string
	userAgent    string
	authBaseURL  *url.URL
	apiBaseURL   *url.URL
	limiter      *rate.Limiter
	logger       *zap.Logger
}

// New validates cfg and builds a Client. It never touches the network.
func New(cfg Config) (*Client, error) {
	required := []struct {
		field string
		value string
	}{
		{"CLIENT_ID", cfg.ClientID},
		{"CLIENT_SECRET", cfg.ClientSecret},
		{"REDDIT_USERNAME", cfg.Username},
		{"REDDIT_PASSWORD", cfg.Password},
		{"REDIRECT_URL", cfg.RedirectURL},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperrors.NewConfigMissingRequired(r.field)
		}
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = DefaultAuthBaseURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Get()
	}

	authBaseURL, err := parseBaseURL(cfg.AuthBaseURL)
	if err != nil {
		return nil, apperrors.NewConfigValidationFailed("REDDIT_AUTH_BASE_URL", err.Error())
	}
	apiBaseURL, err := parseBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, apperrors.NewConfigValidationFailed("REDDIT_API_BASE_URL", err.Error())
	}

	return &Client{
		httpClient:   cfg.HTTPClient,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		username:     cfg.Username,
		password:     cfg.Password,
		redirectURL:  cfg.RedirectURL,
		userAgent:    cfg.UserAgent,
		authBaseURL:  authBaseURL,
		apiBaseURL:   apiBaseURL,
		limiter:      buildLimiter(cfg.RequestsPerMinute, cfg.RateLimitBurst),
		logger:       cfg.Logger,
	}, nil
}

// parseBaseURL parses raw and guarantees a trailing slash so relative
// endpoint paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: errMissingHost}
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

func buildLimiter(requestsPerMinute float64, burst int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRequestsPerMinute
	}
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}
	return rate.NewLimiter(rate.Limit(requestsPerMinute/secondsPerMinute), burst)
}

func (c *Client) authEndpoint(path string) string {
	return c.authBaseURL.ResolveReference(&url.URL{Path: path}).String()
}

func (c *Client) apiEndpoint(path string) string {
	return c.apiBaseURL.ResolveReference(&url.URL{Path: path}).String()
}
