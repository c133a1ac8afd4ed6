package twitterclient

import (
	"context"
	"fmt"
	"net/url"
)

// GetListById retrieves a list's metadata by id. Lookups are cached.
func (c *Client) GetListById(ctx context.Context, listId string) (*List, error) {
	path := fmt.Sprintf(API_LIST_BY_ID, url.PathEscape(listId))

	params := url.Values{}
	params.Set(PARAM_LIST_FIELDS, LIST_FIELDS)

	body, err := c.getJsonBodyWithCache(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get list [%s]: %w", listId, err)
	}
	return parseListResp(body)
}
