package relations

import (
	"context"
	"reflect"
	"testing"

	"github.com/edamsoft/xconnect/pkgs/clients/twitterclient"
)

func makeUsers(ids ...string) []*twitterclient.User {
	users := make([]*twitterclient.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &twitterclient.User{Id: id, Name: "User " + id, Username: "user" + id})
	}
	return users
}

func ids(users []*twitterclient.User) []string {
	res := make([]string, 0, len(users))
	for _, u := range users {
		res = append(res, u.Id)
	}
	return res
}

////////////////////////////////////////////////////////////////////////////////

func TestSetOperations(t *testing.T) {
	followers := makeUsers("A", "B", "C")
	following := makeUsers("B", "C", "D")

	if got := ids(Mutuals(followers, following)); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("mutuals: expected [B C], got %v", got)
	}
	if got := ids(OnlyFollowers(followers, following)); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("only-followers: expected [A], got %v", got)
	}
	if got := ids(OnlyFollowing(followers, following)); !reflect.DeepEqual(got, []string{"D"}) {
		t.Errorf("only-following: expected [D], got %v", got)
	}
}

func TestSetOperationsEmpty(t *testing.T) {
	if got := Mutuals(nil, makeUsers("A")); len(got) != 0 {
		t.Errorf("expected no mutuals, got %v", ids(got))
	}
	if got := OnlyFollowers(makeUsers("A"), nil); !reflect.DeepEqual(ids(got), []string{"A"}) {
		t.Errorf("expected [A], got %v", ids(got))
	}
}

func TestDiffIds(t *testing.T) {
	added, removed := DiffIds([]string{"1", "2", "3"}, []string{"2", "3", "4"})
	if !reflect.DeepEqual(added, []string{"4"}) {
		t.Errorf("expected added [4], got %v", added)
	}
	if !reflect.DeepEqual(removed, []string{"1"}) {
		t.Errorf("expected removed [1], got %v", removed)
	}

	added, removed = DiffIds(nil, []string{"1"})
	if !reflect.DeepEqual(added, []string{"1"}) || len(removed) != 0 {
		t.Errorf("expected added [1] removed [], got %v %v", added, removed)
	}
}

////////////////////////////////////////////////////////////////////////////////

type fakeRelationClient struct {
	followers []*twitterclient.User
	following []*twitterclient.User
}

func (f *fakeRelationClient) GetAllFollowers(ctx context.Context, userId string) ([]*twitterclient.User, error) {
	return f.followers, nil
}

func (f *fakeRelationClient) GetAllFollowing(ctx context.Context, userId string) ([]*twitterclient.User, error) {
	return f.following, nil
}

func TestServiceGetMutuals(t *testing.T) {
	service := NewService(&fakeRelationClient{
		followers: makeUsers("A", "B", "C"),
		following: makeUsers("B", "C", "D"),
	})

	mutuals, err := service.GetMutuals(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(mutuals); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("expected [B C], got %v", got)
	}
}

func TestServiceGetAsymmetric(t *testing.T) {
	service := NewService(&fakeRelationClient{
		followers: makeUsers("A", "B", "C"),
		following: makeUsers("B", "C", "D"),
	})

	asym, err := service.GetAsymmetric(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}
	if got := ids(asym.OnlyFollowers); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("expected only-followers [A], got %v", got)
	}
	if got := ids(asym.OnlyFollowing); !reflect.DeepEqual(got, []string{"D"}) {
		t.Errorf("expected only-following [D], got %v", got)
	}
}
