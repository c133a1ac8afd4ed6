package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetFollowers retrieves one page of the accounts following the given user
func (c *Client) GetFollowers(ctx context.Context, userId string, pageSize int, cursor string) ([]*User, string, error) {
	path := fmt.Sprintf(API_USER_FOLLOWERS, url.PathEscape(userId))

	items, next, err := c.getDataItems(ctx, path, PageParams{
		PageSize: pageSize,
		Cursor:   cursor,
		Extras:   map[string]string{PARAM_USER_FIELDS: USER_FIELDS},
	})
	if err != nil {
		return nil, "", err
	}

	users, err := itemsToUsers(items)
	if err != nil {
		return nil, "", err
	}
	return users, next, nil
}

// GetAllFollowers retrieves every account following the given user,
// following continuation tokens until the endpoint is exhausted
func (c *Client) GetAllFollowers(ctx context.Context, userId string) ([]*User, error) {
	path := fmt.Sprintf(API_USER_FOLLOWERS, url.PathEscape(userId))

	items, err := c.getDataItemsTillEnd(ctx, path, PageParams{
		PageSize: DEFAULT_PAGE_SIZE,
		Extras:   map[string]string{PARAM_USER_FIELDS: USER_FIELDS},
	})
	if err != nil {
		return nil, err
	}
	return itemsToUsers(items)
}
