package reddit

import (
	"context"
	"errors"

	apperrors "reddit-mcp/backend/pkg/errors"

	"go.uber.org/zap"
)

// AccessTokenUnavailable is what AccessToken returns when no token could be fetched.
const AccessTokenUnavailable = "Unable to fetch access_token from reddit"

// FetchAccessToken performs the password grant and returns the full token
// response. A 200 without an access_token is reported as a decode error
// carrying Reddit's body.
func (c *Client) FetchAccessToken(ctx context.Context) (*AccessTokenResponse, error) {
	form := AccessTokenRequest{
		GrantType: GrantTypePassword,
		Username:  c.username,
		Password:  c.password,
	}

	resp, err := postForm[AccessTokenResponse](ctx, c, c.authEndpoint(accessTokenPath), form)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AccessToken returns the bearer token verbatim, or AccessTokenUnavailable after
// logging the failure. Callers that need to branch on the failure should use
// FetchAccessToken.
func (c *Client) AccessToken(ctx context.Context) string {
	resp, err := c.FetchAccessToken(ctx)
	if err != nil {
		return AccessTokenFailure(c.logger, err)
	}
	return resp.AccessToken
}

// AccessTokenFailure logs a failed token fetch and returns the text reported
// to callers in place of a token.
func AccessTokenFailure(log *zap.Logger, err error) string {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status_code", apperrors.StatusCode(err)),
	}
	var decodeErr *apperrors.ErrDecode
	if errors.As(err, &decodeErr) {
		fields = append(fields, zap.String("body", decodeErr.Body))
	}

	log.Error("Failed to fetch access token", fields...)
	return AccessTokenUnavailable
}
