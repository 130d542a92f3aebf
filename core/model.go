package core

import (
	"strconv"
)

// RoleRef is the resolved view of a role granted to a principal.
type RoleRef struct {
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
}

// TeamRef addresses a team by numeric id or slug. A ref that parses as an
// unsigned integer is treated as an id and skips slug resolution.
type TeamRef string

// NewTeamRefFromID wraps an already-resolved team id.
func NewTeamRefFromID(id uint) TeamRef {
	return TeamRef(strconv.FormatUint(uint64(id), 10))
}

// AsID returns the numeric team id when the ref is numeric.
func (t TeamRef) AsID() (uint, bool) {
	id, err := strconv.ParseUint(string(t), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (t TeamRef) String() string {
	return string(t)
}
