package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetUserById retrieves a user by their unique id. Lookups are cached.
func (c *Client) GetUserById(ctx context.Context, userId string) (*User, error) {
	path := fmt.Sprintf(API_USER_BY_ID, url.PathEscape(userId))

	params := url.Values{}
	params.Set(PARAM_USER_FIELDS, USER_FIELDS)

	body, err := c.getJsonBodyWithCache(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get user [%s]: %w", userId, err)
	}
	return parseUserResp(body)
}
