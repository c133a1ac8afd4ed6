package twitterclient

import (
	"context"
	"net/url"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/edamsoft/xconnect/pkgs/utils"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Rate Limiting Structures and Logic
////////////////////////////////////////////////////////////////////////////////

// defaultInsurance is the extra wait added past an endpoint's reset time,
// since reset headers carry one-second granularity
const defaultInsurance = 5 * time.Second

// xRateLimit represents Twitter API rate limit information for a specific endpoint
type xRateLimit struct {
	ResetTime time.Time
	Remaining int
	Limit     int
	Ready     bool
	Url       string
	Mtx       sync.Mutex
}

// wouldBlock checks if making a request would trigger rate limiting (internal, not thread-safe)
func (rl *xRateLimit) wouldBlock() bool {
	threshold := max(2*rl.Limit/100, 1)
	return rl.Remaining <= threshold && time.Now().Before(rl.ResetTime)
}

// safeWouldBlock checks if making a request would trigger rate limiting (thread-safe)
func (rl *xRateLimit) safeWouldBlock() bool {
	rl.Mtx.Lock()
	defer rl.Mtx.Unlock()
	return rl.wouldBlock()
}

// safePreRequest handles rate limiting logic before making a request
func (rl *xRateLimit) safePreRequest(ctx context.Context, nonBlocking bool, insurance time.Duration) error {
	rl.Mtx.Lock()
	defer rl.Mtx.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if time.Now().After(rl.ResetTime) {
		log.
			WithFields(log.Fields{"path": rl.Url}).
			Debugf("[RateLimiter] rate limit is expired")
		rl.Ready = false // later requests wait until this one refreshes the limit
		return nil
	}

	if !rl.wouldBlock() {
		rl.Remaining--
		return nil
	}

	if nonBlocking {
		return ErrWouldBlock
	}

	log.
		WithFields(log.Fields{
			"path":  rl.Url,
			"until": rl.ResetTime.Add(insurance),
		}).
		Warnln("[RateLimiter] start sleeping")

	select {
	case <-time.After(time.Until(rl.ResetTime) + insurance):
		rl.Ready = false
	case <-ctx.Done():
	}
	return nil
}

// makeRateLimit creates a rate limit from HTTP response headers.
// Must return nil or a ready limit, anything else deadlocks waiters.
func makeRateLimit(resp *resty.Response) *xRateLimit {
	header := resp.Header()
	limit := header.Get("X-Rate-Limit-Limit")
	if limit == "" {
		return nil // no rate limit info
	}
	remaining := header.Get("X-Rate-Limit-Remaining")
	if remaining == "" {
		return nil // no rate limit info
	}
	resetTime := header.Get("X-Rate-Limit-Reset")
	if resetTime == "" {
		return nil // no rate limit info
	}

	resetTimeNum, err := strconv.ParseInt(resetTime, 10, 64)
	if err != nil {
		return nil
	}
	remainingNum, err := strconv.Atoi(remaining)
	if err != nil {
		return nil
	}
	limitNum, err := strconv.Atoi(limit)
	if err != nil {
		return nil
	}

	u, _ := url.Parse(resp.Request.URL)
	urlPath := filepath.Join(u.Host, u.Path)

	return &xRateLimit{
		ResetTime: time.Unix(resetTimeNum, 0),
		Remaining: remainingNum,
		Limit:     limitNum,
		Ready:     true,
		Url:       urlPath,
	}
}

////////////////////////////////////////////////////////////////////////////////

// rateLimiter manages rate limiting for multiple API endpoints
type rateLimiter struct {
	limits      *utils.SyncMap[string, *xRateLimit]
	conds       *utils.SyncMap[string, *sync.Cond]
	nonBlocking bool
	insurance   time.Duration
}

// newRateLimiter creates a new rate limiter
func newRateLimiter(nonBlocking bool) *rateLimiter {
	return &rateLimiter{
		limits:      utils.NewSyncMap[string, *xRateLimit](),
		conds:       utils.NewSyncMap[string, *sync.Cond](),
		nonBlocking: nonBlocking,
		insurance:   defaultInsurance,
	}
}

// check verifies if a request can proceed without hitting rate limits
func (rl *rateLimiter) check(ctx context.Context, url *url.URL) error {
	path := url.Path
	cond, _ := rl.conds.LoadOrStore(path, sync.NewCond(&sync.Mutex{}))
	cond.L.Lock()
	defer cond.L.Unlock()

	limit, loaded := rl.limits.LoadOrStore(path, &xRateLimit{})
	if !loaded {
		// first request to a path initializes its limit; the rest wait here
		return nil
	}

	/*
		Only one not-yet-ready request may pass the check at a time, the
		rest block until the limit becomes ready. Not ready means:
		1. first request to the path
		2. the limit expired after a sleep

		The response hooks must make this key ready, nil it, or delete it
		and wake a waiter, otherwise the path deadlocks.
	*/
	for limit != nil && !limit.Ready {
		cond.Wait()
		next, loaded := rl.limits.LoadOrStore(path, &xRateLimit{})
		if !loaded {
			// the previous request failed; inherit its duty to initialize
			return nil
		}
		limit = next
	}

	// a nil limit means the path is not rate limited
	if limit != nil {
		return limit.safePreRequest(ctx, rl.nonBlocking, rl.insurance)
	}
	return nil
}

// reset refreshes the not-ready rate limit for a path after a request
func (rl *rateLimiter) reset(url *url.URL, resp *resty.Response) {
	path := url.Path
	cond, ok := rl.conds.Load(path)
	if !ok {
		return // OnError/OnRetry fired without BeforeRequest ever running
	}
	cond.L.Lock()
	defer cond.L.Unlock()

	limit, ok := rl.limits.Load(path)
	if !ok {
		return
	}
	if limit == nil || limit.Ready {
		return
	}

	if resp == nil || resp.RawResponse == nil {
		// put the path back to its pre-first-request state
		rl.limits.Delete(path)
		cond.Signal()
		return
	}

	rateLimit := makeRateLimit(resp)
	rl.limits.Store(path, rateLimit)
	cond.Broadcast()
}

// wouldBlock checks if a request to the given path would block due to rate limiting
func (rl *rateLimiter) wouldBlock(path string) bool {
	if limit, ok := rl.limits.Load(path); ok {
		return limit != nil && limit.safeWouldBlock()
	}
	return false
}
