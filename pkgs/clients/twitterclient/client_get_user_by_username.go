package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetUserByUsername retrieves a user by handle. Lookups are cached.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	path := fmt.Sprintf(API_USER_BY_USERNAME, url.PathEscape(username))

	params := url.Values{}
	params.Set(PARAM_USER_FIELDS, USER_FIELDS)

	body, err := c.getJsonBodyWithCache(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get user [%s]: %w", username, err)
	}
	return parseUserResp(body)
}

// GetUserIdByUsername resolves a handle to its account id
func (c *Client) GetUserIdByUsername(ctx context.Context, username string) (string, error) {
	usr, err := c.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return usr.Id, nil
}
