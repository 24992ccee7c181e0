package reddit

import (
	"net/url"
	"strings"

	apperrors "reddit-mcp/backend/pkg/errors"

	"github.com/google/uuid"
)

// Authorization durations. A temporary grant expires after an hour, a
// permanent one also returns a refresh token.
const (
	DurationTemporary = "temporary"
	DurationPermanent = "permanent"
)

// DefaultScopes are requested when AuthorizeParams.Scopes is empty.
var DefaultScopes = []string{"identity", "read"}

// AuthorizeParams controls the authorization code URL.
type AuthorizeParams struct {
	// State is echoed back to the redirect URL. A random one is generated when empty.
	State    string   `json:"state"`
	Duration string   `json:"duration"`
	Scopes   []string `json:"scopes"`
}

// Authorization is a ready-to-open authorization URL and the state it carries.
type Authorization struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthorizeURL builds the URL a user visits to grant this application access.
// It makes no network call.
func (c *Client) AuthorizeURL(params AuthorizeParams) (*Authorization, error) {
	duration := params.Duration
	switch duration {
	case "":
		duration = DurationTemporary
	case DurationTemporary, DurationPermanent:
	default:
		return nil, apperrors.NewInvalidRequest("duration", "must be temporary or permanent")
	}

	scopes := params.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	state := params.State
	if state == "" {
		state = uuid.NewString()
	}

	u, err := url.Parse(c.authEndpoint(authorizePath))
	if err != nil {
		return nil, apperrors.NewInvalidRequest("auth_base_url", err.Error())
	}

	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("response_type", "code")
	q.Set("state", state)
	q.Set("redirect_uri", c.redirectURL)
	q.Set("duration", duration)
	q.Set("scope", strings.Join(scopes, " "))
	u.RawQuery = q.Encode()

	return &Authorization{URL: u.String(), State: state}, nil
}
