package reddit

import (
	"errors"
	"net/url"
	"strconv"
)

// GrantTypePassword is the only grant this client performs.
const GrantTypePassword = "password"

var (
	errEmptyAccessToken = errors.New("access_token missing from response")
	errMissingNames     = errors.New("names missing from response")
)

// AccessTokenRequest is the form body sent to the token endpoint.
type AccessTokenRequest struct {
	GrantType string
	Username  string
	Password  string
}

// Values encodes the request as the token endpoint's form body.
func (r AccessTokenRequest) Values() url.Values {
	v := url.Values{}
	v.Set("grant_type", r.GrantType)
	v.Set("username", r.Username)
	v.Set("password", r.Password)
	return v
}

// AccessTokenResponse is returned by the token endpoint on success.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	TokenType   string `json:"token_type"`
}

// Reddit answers bad credentials with a 200 and an error body, so a missing
// token is a malformed response.
func (r *AccessTokenResponse) validate() error {
	if r.AccessToken == "" {
		return errEmptyAccessToken
	}
	return nil
}

// SearchSubredditNamesParams are the caller-facing search options.
type SearchSubredditNamesParams struct {
	Query                 string `json:"query"`
	Exact                 bool   `json:"exact"`
	IncludeOver18         bool   `json:"include_over_18"`
	IncludeUnadvertisable bool   `json:"include_unadvertisable"`
	TypeAhead             bool   `json:"type_ahead"`
}

// SearchSubredditNameRequest is the query string sent to
// /api/search_reddit_names. TypeAhead goes out as typeahead_active.
type SearchSubredditNameRequest struct {
	Query                 string
	Exact                 bool
	IncludeOver18         bool
	IncludeUnadvertisable bool
	TypeAhead             bool
	SearchQueryID         string
}

// Values encodes the request as the search endpoint's query string.
func (r SearchSubredditNameRequest) Values() url.Values {
	v := url.Values{}
	v.Set("query", r.Query)
	v.Set("exact", strconv.FormatBool(r.Exact))
	v.Set("include_over_18", strconv.FormatBool(r.IncludeOver18))
	v.Set("include_unadvertisable", strconv.FormatBool(r.IncludeUnadvertisable))
	v.Set("typeahead_active", strconv.FormatBool(r.TypeAhead))
	v.Set("search_query_id", r.SearchQueryID)
	return v
}

// SearchSubredditNamesResponse lists matching subreddit names in Reddit's order.
type SearchSubredditNamesResponse struct {
	Names []string `json:"names"`
}

func (r *SearchSubredditNamesResponse) validate() error {
	if r.Names == nil {
		return errMissingNames
	}
	return nil
}
