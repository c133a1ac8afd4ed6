package twitterclient

import "fmt"

// List represents a Twitter list. Member order is API-defined and carries
// no meaning to this client.
type List struct {
	Id          string // List's unique identifier
	Name        string
	OwnerId     string // Id of the owning user, when known
	MemberCount int
	IsPrivate   bool
}

func (lst *List) Title() string {
	return fmt.Sprintf("%s(%s)", lst.Name, lst.Id)
}
