package twitterclient

////////////////////////////////////////////////////////////////////////////////

// urls
const (
	API_HOST = "https://api.twitter.com"
)

// v2 endpoint paths
const (
	API_USER_BY_USERNAME = "/2/users/by/username/%s"
	API_USER_BY_ID       = "/2/users/%s"
	API_USER_FOLLOWERS   = "/2/users/%s/followers"
	API_USER_FOLLOWING   = "/2/users/%s/following"
	API_USER_OWNED_LISTS = "/2/users/%s/owned_lists"
	API_LIST_BY_ID       = "/2/lists/%s"
	API_LIST_MEMBERS     = "/2/lists/%s/members"
)

// header keys
const (
	HEADER_USER_AGENT = "User-Agent"
	HEADER_REQUEST_ID = "X-Request-ID"
)

// agent strings
const (
	USER_AGENT = "Edamsoft-XConnect-Go/1.0"
)

// query parameter keys
const (
	PARAM_USER_FIELDS      = "user.fields"
	PARAM_LIST_FIELDS      = "list.fields"
	PARAM_MAX_RESULTS      = "max_results"
	PARAM_PAGINATION_TOKEN = "pagination_token"
)

// expansion field sets requested on every fetch
const (
	USER_FIELDS = "id,name,username,description,protected,public_metrics"
	LIST_FIELDS = "id,name,owner_id,member_count,private"
)

const (
	DEFAULT_PAGE_SIZE  = 100
	DEFAULT_CACHE_SIZE = 32
)
