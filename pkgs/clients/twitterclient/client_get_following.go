package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetFollowing retrieves one page of the accounts the given user follows
func (c *Client) GetFollowing(ctx context.Context, userId string, pageSize int, cursor string) ([]*User, string, error) {
	path := fmt.Sprintf(API_USER_FOLLOWING, url.PathEscape(userId))

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

// GetAllFollowing retrieves every account the given user follows
func (c *Client) GetAllFollowing(ctx context.Context, userId string) ([]*User, error) {
	path := fmt.Sprintf(API_USER_FOLLOWING, url.PathEscape(userId))

	items, err := c.getDataItemsTillEnd(ctx, path, PageParams{
		PageSize: DEFAULT_PAGE_SIZE,
		Extras:   map[string]string{PARAM_USER_FIELDS: USER_FIELDS},
	})
	if err != nil {
		return nil, err
	}
	return itemsToUsers(items)
}
