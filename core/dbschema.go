package core

import (
	"time"
)

// Team is a tenant boundary. Teams are addressed by numeric id or by slug.
type Team struct {
	ID    uint      `json:"id" gorm:"primaryKey;auto_increment"`
	Slug  string    `json:"slug" gorm:"type:text;uniqueIndex"`
	Name  string    `json:"name" gorm:"type:text"`
	CDate time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// Role is a named bundle of policy attachments grantable to a principal
// within a team. TeamID == nil marks a system role visible to every team;
// system roles are read-only to this layer.
type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	Name        string    `json:"name" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	TeamID      *uint     `json:"teamId" gorm:"index;default:null"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Policy is a named collection of statements. TeamID follows the same
// nullable scoping as Role.
type Policy struct {
	ID         string        `json:"id" gorm:"primaryKey;type:text"`
	Name       string        `json:"name" gorm:"type:text"`
	TeamID     *uint         `json:"teamId" gorm:"index;default:null"`
	Statements StatementList `json:"statements" gorm:"type:jsonb"`
	CDate      time.Time     `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate      time.Time     `json:"mdate" gorm:"autoUpdateTime"`
}

// MemberRole links a team membership to a role.
type MemberRole struct {
	ID        uint      `json:"id" gorm:"primaryKey;auto_increment"`
	TeamID    uint      `json:"teamId" gorm:"uniqueIndex:uniq_member_role"`
	Principal string    `json:"principal" gorm:"type:text;uniqueIndex:uniq_member_role"`
	RoleID    string    `json:"roleId" gorm:"type:text;uniqueIndex:uniq_member_role"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
}

// RolePolicy links a role to a policy.
type RolePolicy struct {
	ID       uint   `json:"id" gorm:"primaryKey;auto_increment"`
	RoleID   string `json:"roleId" gorm:"type:text;uniqueIndex:uniq_role_policy"`
	PolicyID string `json:"policyId" gorm:"type:text;uniqueIndex:uniq_role_policy"`
}
