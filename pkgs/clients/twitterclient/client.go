package twitterclient

import (
	"sync"

	"github.com/edamsoft/xconnect/pkgs/utils"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

// Client is a read-only Twitter API v2 client authenticated with an
// app-only bearer token. The token is fixed for the client's lifetime.
type Client struct {
	restyClient *resty.Client
	rateLimiter *rateLimiter
	cache       Cache
	error       error
	mutex       sync.RWMutex
}

func New(bearerToken string) *Client {
	c := &Client{
		restyClient: resty.New(),
		rateLimiter: newRateLimiter(false),
		cache:       newLruCache(DEFAULT_CACHE_SIZE),
	}

	c.restyClient.SetBaseURL(API_HOST)
	c.restyClient.SetAuthToken(bearerToken)
	c.restyClient.SetHeader(HEADER_USER_AGENT, USER_AGENT)

	c.setRequestId()
	c.setRespChecks()
	c.setRateLimit()
	c.setRetries()

	return c
}

////////////////////////////////////////////////////////////////////////////////

// setRequestId tags every outgoing request for log correlation
func (c *Client) setRequestId() {
	c.restyClient.OnBeforeRequest(func(client *resty.Client, req *resty.Request) error {
		req.SetHeader(HEADER_REQUEST_ID, uuid.NewString())
		return nil
	})
}

// setRespChecks surfaces API-level and HTTP-level failures as typed errors
func (c *Client) setRespChecks() {
	c.restyClient.OnAfterResponse(func(client *resty.Client, resp *resty.Response) error {
		if err := utils.CheckRespStatus(resp); err != nil {
			return err
		}
		if err := CheckApiResp(resp.Body()); err != nil {
			return err
		}
		return nil
	})
}

// setRetries configures retry behavior: transport-level failures and HTTP 429
// are retried, typed API failures are not. A 429 retry passes through the
// rate limiter again, which delays it until the reported reset time.
func (c *Client) setRetries() {
	c.restyClient.SetRetryCount(5)
	c.restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err == ErrWouldBlock {
			return false
		}
		// TCP or other transport errors
		_, ok := err.(*TwitterApiError)
		_, ok2 := err.(*utils.HttpStatusError)
		return !ok && !ok2 && err != nil
	})
	c.restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		return utils.IsStatusCode(err, 429)
	})
}

////////////////////////////////////////////////////////////////////////////////

func (c *Client) SetLogger(logger *log.Logger) {
	c.restyClient.SetLogger(logger)
}

// SetCache replaces the response cache. A nil cache disables caching.
func (c *Client) SetCache(cache Cache) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.cache = cache
}

// SetNonBlocking makes the rate limiter return ErrWouldBlock instead of
// sleeping until the endpoint's reset time.
func (c *Client) SetNonBlocking(nonBlocking bool) {
	c.rateLimiter.nonBlocking = nonBlocking
}

// SetApiHost points the client at a different API origin
func (c *Client) SetApiHost(host string) {
	c.restyClient.SetBaseURL(host)
}

////////////////////////////////////////////////////////////////////////////////
// Client State Management
//
// A rejected bearer token cannot recover within the client's lifetime, so
// the first 401 marks the client unavailable and later requests fail fast
// without touching the network.

// GetError returns any error associated with the client
func (c *Client) GetError() error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.error
}

// SetError sets an error for the client, marking it as unavailable
func (c *Client) SetError(err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.error = err
	if err != nil {
		log.Debugln("client is no longer available:", err)
	}
}

// IsAvailable checks if the client is available for use
func (c *Client) IsAvailable() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.error == nil
}
