package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetListMembers retrieves one page of a list's members
func (c *Client) GetListMembers(ctx context.Context, listId string, pageSize int, cursor string) ([]*User, string, error) {
	path := fmt.Sprintf(API_LIST_MEMBERS, url.PathEscape(listId))

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

// GetAllListMembers retrieves the full membership of a list. A forbidden or
// deleted list surfaces as an error, never as an empty membership.
func (c *Client) GetAllListMembers(ctx context.Context, listId string) ([]*User, error) {
	path := fmt.Sprintf(API_LIST_MEMBERS, url.PathEscape(listId))

	items, err := c.getDataItemsTillEnd(ctx, path, PageParams{
		PageSize: DEFAULT_PAGE_SIZE,
		Extras:   map[string]string{PARAM_USER_FIELDS: USER_FIELDS},
	})
	if err != nil {
		return nil, err
	}
	return itemsToUsers(items)
}
