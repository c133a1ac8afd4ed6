package twitterclient

import (
	"context"
	"net/url"
	"strconv"

	"github.com/edamsoft/xconnect/pkgs/utils"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// PageParams describes one page request against a paginated v2 endpoint
type PageParams struct {
	PageSize int
	Cursor   string

	Extras map[string]string
}

func (p PageParams) values() url.Values {
	params := url.Values{}
	if p.PageSize > 0 {
		params.Set(PARAM_MAX_RESULTS, strconv.Itoa(p.PageSize))
	}
	if p.Cursor != "" {
		params.Set(PARAM_PAGINATION_TOKEN, p.Cursor)
	}
	for k, v := range p.Extras {
		params.Set(k, v)
	}
	return params
}

////////////////////////////////////////////////////////////////////////////////

// getJsonBody performs one authenticated GET and returns the raw body
func (c *Client) getJsonBody(ctx context.Context, path string, params url.Values) ([]byte, error) {
	logger := log.WithFields(log.Fields{
		"caller": "Client.getJsonBody",
		"path":   path,
	})

	if err := c.GetError(); err != nil {
		return nil, err
	}

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		if utils.IsStatusCode(err, 401) {
			c.SetError(err)
		}
		logger.WithError(err).Debugln("request failed")
		return nil, err
	}
	return resp.Body(), nil
}

// getJsonBodyWithCache serves single-record lookups from the response cache
func (c *Client) getJsonBodyWithCache(ctx context.Context, path string, params url.Values) ([]byte, error) {
	key := path
	if len(params) > 0 {
		key += "?" + params.Encode()
	}

	if body, ok := c.cacheGet(key); ok {
		return body, nil
	}

	body, err := c.getJsonBody(ctx, path, params)
	if err != nil {
		return nil, err
	}
	c.cacheSet(key, body)
	return body, nil
}

////////////////////////////////////////////////////////////////////////////////

// getDataItems fetches one page and returns its data array and the
// continuation token, empty when the page is the last one
func (c *Client) getDataItems(ctx context.Context, path string, pageParams PageParams) ([]gjson.Result, string, error) {
	body, err := c.getJsonBody(ctx, path, pageParams.values())
	if err != nil {
		return nil, "", err
	}

	next := gjson.GetBytes(body, "meta.next_token").String()
	data := gjson.GetBytes(body, "data")
	if !data.Exists() {
		// the API omits data entirely when result_count is zero
		return nil, next, nil
	}
	if !data.IsArray() {
		return nil, "", NewValidationError("data", string(body))
	}
	return data.Array(), next, nil
}

// getDataItemsTillEnd follows continuation tokens until the endpoint is
// exhausted. Pagination is sequential, each page's token gates the next.
func (c *Client) getDataItemsTillEnd(ctx context.Context, path string, pageParams PageParams) ([]gjson.Result, error) {
	res := make([]gjson.Result, 0)
	for {
		page, next, err := c.getDataItems(ctx, path, pageParams)
		if err != nil {
			return nil, err
		}

		res = append(res, page...)
		if next == "" {
			break
		}
		pageParams.Cursor = next
	}
	return res, nil
}
