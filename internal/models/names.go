package models

import (
	"fmt"

	"github.com/google/uuid"
)

// UnknownMemberName is shown when a member ID cannot be resolved, for
// example because the profile was deleted after a bill named it.
const UnknownMemberName = "Unknown User"

// MemberIndex maps member IDs to their profiles for display name
// resolution.
type MemberIndex map[uuid.UUID]Member

// NewMemberIndex builds a MemberIndex for all known members.
func NewMemberIndex() (MemberIndex, error) {
	var members []Member
	if err := DB.Find(&members).Error; err != nil {
		return nil, err
	}

	index := make(MemberIndex, len(members))
	for _, member := range members {
		index[member.ID] = member
	}

	return index, nil
}

// ResolveName returns the display name for a member ID.
//
// The viewing member gets their own name suffixed with "(You)",
// everybody else resolves through the index.
func ResolveName(member, self uuid.UUID, index MemberIndex) string {
	profile, ok := index[member]
	if !ok {
		return UnknownMemberName
	}

	if member == self {
		return fmt.Sprintf("%s (You)", profile.Username)
	}

	return profile.Username
}
