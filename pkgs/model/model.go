package model

import (
	"strings"
	"time"
)

////////////////////////////////////////////////////////////////////////////////

// snapshot kinds
const (
	KIND_FOLLOWERS = "followers"
	KIND_FOLLOWING = "following"
	KIND_MUTUALS   = "mutuals"
)

// RelationSnapshot records the member ids of one relationship fetch so later
// runs can report what changed
type RelationSnapshot struct {
	Id          int32     `db:"id"`
	UserId      string    `db:"user_id"`
	Kind        string    `db:"kind"`
	MemberIds   string    `db:"member_ids"` // comma-joined, empty for none
	MemberCount int       `db:"member_count"`
	CreatedAt   time.Time `db:"created_at"`
}

// SetMemberIds stores the given ids on the snapshot
func (s *RelationSnapshot) SetMemberIds(ids []string) {
	s.MemberIds = strings.Join(ids, ",")
	s.MemberCount = len(ids)
}

// MemberIdList returns the stored ids in their original order
func (s *RelationSnapshot) MemberIdList() []string {
	if s.MemberIds == "" {
		return nil
	}
	return strings.Split(s.MemberIds, ",")
}
