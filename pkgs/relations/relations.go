package relations

import (
	"github.com/edamsoft/xconnect/pkgs/clients/twitterclient"
)

////////////////////////////////////////////////////////////////////////////////
// Set operations over user sequences, keyed by account id. Order of the
// first argument is preserved in every result.
////////////////////////////////////////////////////////////////////////////////

// Mutuals returns the accounts present in both followers and following,
// i.e. the accounts with a follow relationship in both directions
func Mutuals(followers, following []*twitterclient.User) []*twitterclient.User {
	return intersect(followers, following)
}

// OnlyFollowers returns the accounts that follow the user without being
// followed back
func OnlyFollowers(followers, following []*twitterclient.User) []*twitterclient.User {
	return subtract(followers, following)
}

// OnlyFollowing returns the accounts the user follows without a follow back
func OnlyFollowing(followers, following []*twitterclient.User) []*twitterclient.User {
	return subtract(following, followers)
}

////////////////////////////////////////////////////////////////////////////////

func idSet(users []*twitterclient.User) map[string]struct{} {
	set := make(map[string]struct{}, len(users))
	for _, u := range users {
		set[u.Id] = struct{}{}
	}
	return set
}

func intersect(a, b []*twitterclient.User) []*twitterclient.User {
	inB := idSet(b)
	res := make([]*twitterclient.User, 0)
	for _, u := range a {
		if _, ok := inB[u.Id]; ok {
			res = append(res, u)
		}
	}
	return res
}

func subtract(a, b []*twitterclient.User) []*twitterclient.User {
	inB := idSet(b)
	res := make([]*twitterclient.User, 0)
	for _, u := range a {
		if _, ok := inB[u.Id]; !ok {
			res = append(res, u)
		}
	}
	return res
}
