package relations

import (
	"context"

	"github.com/edamsoft/xconnect/pkgs/clients/twitterclient"
)

////////////////////////////////////////////////////////////////////////////////

// RelationClient is the subset of the API client the service needs
type RelationClient interface {
	GetAllFollowers(ctx context.Context, userId string) ([]*twitterclient.User, error)
	GetAllFollowing(ctx context.Context, userId string) ([]*twitterclient.User, error)
}

// Relationship holds both fully-paginated relationship sequences of a user
type Relationship struct {
	Followers []*twitterclient.User
	Following []*twitterclient.User
}

// Asymmetric splits a relationship into its one-directional parts
type Asymmetric struct {
	OnlyFollowers []*twitterclient.User // they follow, no follow back
	OnlyFollowing []*twitterclient.User // followed, they don't follow back
}

////////////////////////////////////////////////////////////////////////////////

// Service composes the API client into relationship queries
type Service struct {
	client RelationClient
}

func NewService(client RelationClient) *Service {
	return &Service{client: client}
}

// GetRelationship fetches both relationship sequences of a user. The two
// fetches are sequential, each one pages until its endpoint is exhausted.
func (s *Service) GetRelationship(ctx context.Context, userId string) (*Relationship, error) {
	followers, err := s.client.GetAllFollowers(ctx, userId)
	if err != nil {
		return nil, err
	}
	following, err := s.client.GetAllFollowing(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &Relationship{Followers: followers, Following: following}, nil
}

// GetMutuals returns the accounts that both follow and are followed by the user
func (s *Service) GetMutuals(ctx context.Context, userId string) ([]*twitterclient.User, error) {
	rel, err := s.GetRelationship(ctx, userId)
	if err != nil {
		return nil, err
	}
	return Mutuals(rel.Followers, rel.Following), nil
}

// GetAsymmetric returns the one-directional relationships of the user
func (s *Service) GetAsymmetric(ctx context.Context, userId string) (*Asymmetric, error) {
	rel, err := s.GetRelationship(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &Asymmetric{
		OnlyFollowers: OnlyFollowers(rel.Followers, rel.Following),
		OnlyFollowing: OnlyFollowing(rel.Followers, rel.Following),
	}, nil
}
