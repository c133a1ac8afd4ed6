package twitterclient

import (
	"net/url"

	"github.com/go-resty/resty/v2"
)

// setRateLimit wires the per-endpoint rate limiter into the resty lifecycle.
// Limit state is refreshed from X-Rate-Limit-* headers on every response.
func (c *Client) setRateLimit() {
	c.restyClient.OnBeforeRequest(func(client *resty.Client, req *resty.Request) error {
		u, err := url.Parse(req.URL)
		if err != nil {
			return err
		}
		return c.rateLimiter.check(req.Context(), u)
	})

	c.restyClient.OnSuccess(func(client *resty.Client, resp *resty.Response) {
		c.rateLimiter.reset(resp.Request.RawRequest.URL, resp)
	})

	c.restyClient.OnError(func(req *resty.Request, err error) {
		if req == nil || req.RawRequest == nil {
			return
		}

		var resp *resty.Response
		if v, ok := err.(*resty.ResponseError); ok {
			resp = v.Response
		}
		c.rateLimiter.reset(req.RawRequest.URL, resp)
	})

	c.restyClient.AddRetryHook(func(resp *resty.Response, err error) {
		if resp == nil || resp.Request == nil || resp.Request.RawRequest == nil {
			return
		}
		c.rateLimiter.reset(resp.Request.RawRequest.URL, resp)
	})
}

// WouldBlock reports whether a request to the given path would be delayed
func (c *Client) WouldBlock(path string) bool {
	return c.rateLimiter.wouldBlock(path)
}
