package twitterclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/edamsoft/xconnect/pkgs/utils"
)

////////////////////////////////////////////////////////////////////////////////
// Stub backend helpers
////////////////////////////////////////////////////////////////////////////////

type stubBackend struct {
	mu   sync.Mutex
	hits map[string]int
}

func newStubBackend() *stubBackend {
	return &stubBackend{hits: make(map[string]int)}
}

func (b *stubBackend) hit(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hits[path]++
	return b.hits[path]
}

func (b *stubBackend) count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

func newStubClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New("test-token")
	client.SetApiHost(server.URL)
	return client, server
}

func userJson(n int) string {
	return fmt.Sprintf(`{"id":"%d","name":"User %d","username":"user%d"}`, n, n, n)
}

////////////////////////////////////////////////////////////////////////////////

func TestGetUserIdMatchesDirectLookup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/by/username/edam", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"id":"42","name":"Edam","username":"edam","protected":false}}`)
	})
	mux.HandleFunc("/2/users/42", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"id":"42","name":"Edam","username":"edam","protected":false}}`)
	})
	client, _ := newStubClient(t, mux)
	ctx := context.Background()

	id, err := client.GetUserIdByUsername(ctx, "edam")
	if err != nil {
		t.Fatal(err)
	}

	direct, err := client.GetUserById(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if direct.Id != id {
		t.Errorf("lookup by username gave id %s, lookup by id gave %s", id, direct.Id)
	}
	if direct.Username != "edam" {
		t.Errorf("unexpected username %q", direct.Username)
	}
}

func TestGetAllFollowersPagination(t *testing.T) {
	backend := newStubBackend()
	pages := map[string]string{
		"":   fmt.Sprintf(`{"data":[%s,%s,%s],"meta":{"result_count":3,"next_token":"t2"}}`, userJson(1), userJson(2), userJson(3)),
		"t2": fmt.Sprintf(`{"data":[%s,%s,%s],"meta":{"result_count":3,"next_token":"t3"}}`, userJson(4), userJson(5), userJson(6)),
		"t3": fmt.Sprintf(`{"data":[%s,%s],"meta":{"result_count":2}}`, userJson(7), userJson(8)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/42/followers", func(w http.ResponseWriter, r *http.Request) {
		backend.hit(r.URL.Path)
		page, ok := pages[r.URL.Query().Get("pagination_token")]
		if !ok {
			t.Errorf("unexpected pagination token %q", r.URL.Query().Get("pagination_token"))
			w.WriteHeader(400)
			return
		}
		fmt.Fprint(w, page)
	})
	client, _ := newStubClient(t, mux)

	users, err := client.GetAllFollowers(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}

	if len(users) != 8 {
		t.Fatalf("expected 8 followers, got %d", len(users))
	}
	for i, usr := range users {
		if want := strconv.Itoa(i + 1); usr.Id != want {
			t.Errorf("follower %d: expected id %s, got %s", i, want, usr.Id)
		}
	}
	if got := backend.count("/2/users/42/followers"); got != 3 {
		t.Errorf("expected exactly 3 page requests, got %d", got)
	}
}

func TestGetUserValidationFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/9", func(w http.ResponseWriter, r *http.Request) {
		// username is missing
		fmt.Fprint(w, `{"data":{"id":"9","name":"No Handle"}}`)
	})
	client, _ := newStubClient(t, mux)

	usr, err := client.GetUserById(context.Background(), "9")
	if usr != nil {
		t.Error("no partial record should be returned for a malformed response")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "username" {
		t.Errorf("expected failure on field username, got %q", vErr.Field)
	}
}

func TestGetUserApiError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/by/username/ghost", func(w http.ResponseWriter, r *http.Request) {
		// v2 reports unknown usernames with a 200 and an errors array
		fmt.Fprint(w, `{"errors":[{"value":"ghost","detail":"Could not find user with username: [ghost].","title":"Not Found Error","parameter":"username"}]}`)
	})
	client, _ := newStubClient(t, mux)

	_, err := client.GetUserByUsername(context.Background(), "ghost")
	var apiErr *TwitterApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected TwitterApiError, got %v", err)
	}
	if apiErr.Title != "Not Found Error" {
		t.Errorf("unexpected error title %q", apiErr.Title)
	}
}

func TestGetUserByUsernameIsCached(t *testing.T) {
	backend := newStubBackend()
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/by/username/edam", func(w http.ResponseWriter, r *http.Request) {
		backend.hit(r.URL.Path)
		fmt.Fprint(w, `{"data":{"id":"42","name":"Edam","username":"edam","public_metrics":{"followers_count":10,"following_count":5}}}`)
	})
	client, _ := newStubClient(t, mux)
	ctx := context.Background()

	first, err := client.GetUserByUsername(ctx, "edam")
	if err != nil {
		t.Fatal(err)
	}
	second, err := client.GetUserByUsername(ctx, "edam")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated lookups should yield structurally equal records")
	}
	if got := backend.count("/2/users/by/username/edam"); got != 1 {
		t.Errorf("expected a single backend hit, got %d", got)
	}
}

func TestRateLimitedRequestWaitsUntilReset(t *testing.T) {
	reset := time.Now().Add(1500 * time.Millisecond)
	resetAt := time.Unix(reset.Unix(), 0)

	var mu sync.Mutex
	hitTimes := make([]time.Time, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/7", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hitTimes = append(hitTimes, time.Now())
		n := len(hitTimes)
		mu.Unlock()

		w.Header().Set("X-Rate-Limit-Limit", "15")
		w.Header().Set("X-Rate-Limit-Reset", strconv.FormatInt(reset.Unix(), 10))
		if n == 1 {
			w.Header().Set("X-Rate-Limit-Remaining", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("X-Rate-Limit-Remaining", "14")
		fmt.Fprint(w, `{"data":{"id":"7","name":"User 7","username":"user7"}}`)
	})
	client, _ := newStubClient(t, mux)
	client.rateLimiter.insurance = 50 * time.Millisecond

	usr, err := client.GetUserById(context.Background(), "7")
	if err != nil {
		t.Fatal(err)
	}
	if usr.Id != "7" {
		t.Errorf("unexpected user id %s", usr.Id)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(hitTimes) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(hitTimes))
	}
	if hitTimes[1].Before(resetAt) {
		t.Errorf("retry was issued %v before the reset time", resetAt.Sub(hitTimes[1]))
	}
}

func TestNonBlockingRateLimit(t *testing.T) {
	reset := time.Now().Add(30 * time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Limit", "15")
		w.Header().Set("X-Rate-Limit-Remaining", "0")
		w.Header().Set("X-Rate-Limit-Reset", strconv.FormatInt(reset.Unix(), 10))
		fmt.Fprint(w, `{"data":{"id":"7","name":"User 7","username":"user7"}}`)
	})
	client, _ := newStubClient(t, mux)
	client.SetNonBlocking(true)
	client.SetCache(nil)
	ctx := context.Background()

	// first call initializes the endpoint's limit from the response headers
	if _, err := client.GetUserById(ctx, "7"); err != nil {
		t.Fatal(err)
	}

	if !client.WouldBlock("/2/users/7") {
		t.Error("exhausted endpoint should report as blocking")
	}

	_, err := client.GetUserById(ctx, "7")
	if !errors.Is(err, ErrWouldBlock) {
		t.Errorf("expected ErrWouldBlock, got %v", err)
	}
}

func TestForbiddenListMembersPropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/lists/99/members", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	client, _ := newStubClient(t, mux)

	users, err := client.GetAllListMembers(context.Background(), "99")
	if users != nil {
		t.Error("a forbidden list must not look like an empty one")
	}
	if !utils.IsStatusCode(err, 403) {
		t.Fatalf("expected HTTP 403 to reach the caller, got %v", err)
	}
}

func TestMalformedItemFailsWholePage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2/users/42/followers", func(w http.ResponseWriter, r *http.Request) {
		// second item has no username
		fmt.Fprintf(w, `{"data":[%s,{"id":"2","name":"No Handle"}],"meta":{"result_count":2}}`, userJson(1))
	})
	client, _ := newStubClient(t, mux)

	users, err := client.GetAllFollowers(context.Background(), "42")
	if users != nil {
		t.Error("no partial page should be returned when an item is malformed")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "username" {
		t.Errorf("expected failure on field username, got %q", vErr.Field)
	}
}

func TestUnauthorizedMarksClientUnavailable(t *testing.T) {
	backend := newStubBackend()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		backend.hit(r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	})
	client, _ := newStubClient(t, mux)
	client.SetCache(nil)
	ctx := context.Background()

	_, err := client.GetUserById(ctx, "8")
	if !utils.IsStatusCode(err, 401) {
		t.Fatalf("expected HTTP 401, got %v", err)
	}
	if client.IsAvailable() {
		t.Error("client should be unavailable after a rejected token")
	}

	// later requests fail fast without touching the network
	_, err = client.GetUserByUsername(ctx, "edam")
	if !utils.IsStatusCode(err, 401) {
		t.Fatalf("expected the stored HTTP 401, got %v", err)
	}
	if got := backend.count("/2/users/by/username/edam"); got != 0 {
		t.Errorf("expected no request after the client became unavailable, got %d", got)
	}
}
