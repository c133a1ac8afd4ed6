package twitterclient

import (
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// parseUserResp parses the top-level JSON response of a single-user endpoint
func parseUserResp(resp []byte) (*User, error) {
	data := gjson.GetBytes(resp, "data")
	if !data.Exists() {
		return nil, NewValidationError("data", string(resp))
	}
	return parseUserJson(&data)
}

// parseUserJson parses one user object from a v2 API response.
// id, name and username are required, the rest is optional.
func parseUserJson(userJson *gjson.Result) (*User, error) {
	id := userJson.Get("id")
	if !id.Exists() || id.String() == "" {
		return nil, NewValidationError("id", userJson.String())
	}
	name := userJson.Get("name")
	if !name.Exists() {
		return nil, NewValidationError("name", userJson.String())
	}
	username := userJson.Get("username")
	if !username.Exists() || username.String() == "" {
		return nil, NewValidationError("username", userJson.String())
	}

	usr := &User{
		Id:       id.String(),
		Name:     name.String(),
		Username: username.String(),
	}

	if desc := userJson.Get("description"); desc.Exists() {
		usr.Description = desc.String()
	}
	if protected := userJson.Get("protected"); protected.Exists() {
		usr.IsProtected = protected.Bool()
	}
	if metrics := userJson.Get("public_metrics"); metrics.Exists() {
		usr.FollowersCount = int(metrics.Get("followers_count").Int())
		usr.FollowingCount = int(metrics.Get("following_count").Int())
	}
	return usr, nil
}

// itemsToUsers converts the data array of a list endpoint to User objects.
// A single malformed item fails the whole page, no partial records escape.
func itemsToUsers(items []gjson.Result) ([]*User, error) {
	users := make([]*User, 0, len(items))
	for _, item := range items {
		u, err := parseUserJson(&item)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
