package twitterclient

import (
	"fmt"
)

// User represents a Twitter account. Ids are opaque strings as returned by
// the v2 API. Values are never mutated after parsing, a re-fetch builds a
// new instance.
type User struct {
	Id             string // User's unique identifier
	Name           string // Display name
	Username       string // Handle, without the leading @
	Description    string // Profile bio
	IsProtected    bool   // Whether the account is protected/private
	FollowersCount int    // Number of accounts following this user
	FollowingCount int    // Number of accounts this user follows
}

// Title returns a formatted string with the user's display name and handle
func (user *User) Title() string {
	return fmt.Sprintf("%s(@%s)", user.Name, user.Username)
}
