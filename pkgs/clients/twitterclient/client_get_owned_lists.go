package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetOwnedLists retrieves every public list owned by the given user
func (c *Client) GetOwnedLists(ctx context.Context, userId string) ([]*List, error) {
	path := fmt.Sprintf(API_USER_OWNED_LISTS, url.PathEscape(userId))

	items, err := c.getDataItemsTillEnd(ctx, path, PageParams{
		PageSize: DEFAULT_PAGE_SIZE,
		Extras:   map[string]string{PARAM_LIST_FIELDS: LIST_FIELDS},
	})
	if err != nil {
		return nil, err
	}

	lists, err := itemsToLists(items)
	if err != nil {
		return nil, err
	}

	// owned_lists responses omit owner_id, the owner is the queried user
	for _, lst := range lists {
		if lst.OwnerId == "" {
			lst.OwnerId = userId
		}
	}
	return lists, nil
}
