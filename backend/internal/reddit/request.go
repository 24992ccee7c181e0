package reddit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "reddit-mcp/backend/pkg/errors"

	"go.uber.org/zap"
)

// Encoder is implemented by request types that serialize to query-string or
// form values.
type Encoder interface {
	Values() url.Values
}

// validator is implemented by response types that need more than a
// successful unmarshal to be usable.
type validator interface {
	validate() error
}

// getJSON issues a GET to endpoint with query encoded into the URL and, when
// bearer is non-empty, an Authorization: Bearer header.
func getJSON[T any](ctx context.Context, c *Client, endpoint, bearer string, query Encoder) (T, error) {
	var zero T

	u, err := url.Parse(endpoint)
	if err != nil {
		return zero, apperrors.NewTransport(http.MethodGet, endpoint, err)
	}
	if query != nil {
		u.RawQuery = query.Values().Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return zero, apperrors.NewTransport(http.MethodGet, endpoint, err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return doJSON[T](c, req)
}

// postForm issues a form-encoded POST authenticated with the application's
// client id and secret.
func postForm[T any](ctx context.Context, c *Client, endpoint string, form Encoder) (T, error) {
	var zero T

	var body string
	if form != nil {
		body = form.Values().Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return zero, apperrors.NewTransport(http.MethodPost, endpoint, err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return doJSON[T](c, req)
}

// doJSON performs the round trip. Only 200 is success; any other status is
// returned as a status error without touching the JSON decoder.
func doJSON[T any](c *Client, req *http.Request) (T, error) {
	var zero T
	endpoint := req.URL.String()

	req.Header.Set("User-Agent", c.userAgent)

	if err := c.limiter.Wait(req.Context()); err != nil {
		return zero, apperrors.NewContextCancelled("rate limit wait", err)
	}

	c.logger.Info("Making request",
		zap.String("method", req.Method),
		zap.String("url", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, apperrors.NewTransport(req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apperrors.NewTransport(req.Method, endpoint, err)
	}

	c.logger.Info("Received response",
		zap.String("method", req.Method),
		zap.String("url", endpoint),
		zap.Int("status_code", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return zero, apperrors.NewStatus(endpoint, resp.StatusCode, string(body))
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, apperrors.NewDecode(endpoint, string(body), err)
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.validate(); err != nil {
			return zero, apperrors.NewDecode(endpoint, string(body), err)
		}
	}

	return out, nil
}
