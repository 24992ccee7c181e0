package reddit

import (
	"context"
	"strings"

	apperrors "reddit-mcp/backend/pkg/errors"

	"github.com/google/uuid"
)

// SearchSubredditNames looks up subreddit names starting with params.Query.
// Every call carries a fresh search_query_id.
func (c *Client) SearchSubredditNames(ctx context.Context, params SearchSubredditNamesParams, accessToken string) (*SearchSubredditNamesResponse, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, apperrors.NewInvalidRequest("query", "must not be empty")
	}
	if accessToken == "" {
		return nil, apperrors.NewInvalidRequest("access_token", "must not be empty")
	}

	query := SearchSubredditNameRequest{
		Query:                 params.Query,
		Exact:                 params.Exact,
		IncludeOver18:         params.IncludeOver18,
		IncludeUnadvertisable: params.IncludeUnadvertisable,
		TypeAhead:             params.TypeAhead,
		SearchQueryID:         uuid.NewString(),
	}

	resp, err := getJSON[SearchSubredditNamesResponse](ctx, c, c.apiEndpoint(searchRedditNamesPath), accessToken, query)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
