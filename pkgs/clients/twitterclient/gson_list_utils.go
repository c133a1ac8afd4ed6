package twitterclient

import (
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

// parseListResp parses the top-level JSON response of a single-list endpoint
func parseListResp(resp []byte) (*List, error) {
	data := gjson.GetBytes(resp, "data")
	if !data.Exists() {
		return nil, NewValidationError("data", string(resp))
	}
	return parseListJson(&data)
}

// parseListJson parses one list object. id and name are required.
func parseListJson(listJson *gjson.Result) (*List, error) {
	id := listJson.Get("id")
	if !id.Exists() || id.String() == "" {
		return nil, NewValidationError("id", listJson.String())
	}
	name := listJson.Get("name")
	if !name.Exists() {
		return nil, NewValidationError("name", listJson.String())
	}

	lst := &List{
		Id:   id.String(),
		Name: name.String(),
	}

	if owner := listJson.Get("owner_id"); owner.Exists() {
		lst.OwnerId = owner.String()
	}
	if count := listJson.Get("member_count"); count.Exists() {
		lst.MemberCount = int(count.Int())
	}
	if private := listJson.Get("private"); private.Exists() {
		lst.IsPrivate = private.Bool()
	}
	return lst, nil
}

func itemsToLists(items []gjson.Result) ([]*List, error) {
	lists := make([]*List, 0, len(items))
	for _, item := range items {
		lst, err := parseListJson(&item)
		if err != nil {
			return nil, err
		}
		lists = append(lists, lst)
	}
	return lists, nil
}
