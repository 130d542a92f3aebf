package core

const (
	PrincipalCtxKey   = "gk-principal"
	IntegrationCtxKey = "gk-integration"
)

const (
	PrincipalHeader   = "x-gatekeeper-principal"
	IntegrationHeader = "x-gatekeeper-integration"
)

const (
	// OwnerRoleID is the seeded system role whose last grant in a team
	// cannot be revoked. Team creation grants it to the creating principal.
	OwnerRoleID   = "sys-owner"
	OwnerRoleName = "owner"

	// OwnerPolicyID is the seeded system policy attached to the owner role.
	// It allows the team management resources, so a fresh team's owner can
	// author roles, policies and grants without outside help.
	OwnerPolicyID = "sys-owner-policy"
)

// Management resources guarding the mutation surface.
const (
	ResourceTeamRolesManage    = "TEAM_ROLES_MANAGE"
	ResourceTeamMembersManage  = "TEAM_MEMBERS_MANAGE"
	ResourceTeamPoliciesManage = "TEAM_POLICIES_MANAGE"
)

// HiddenRoleIDs are internal bootstrap roles excluded from role listings.
// This is a cosmetic filter, not a security boundary: a grant referencing
// one of these ids still evaluates normally.
var HiddenRoleIDs = []string{
	"sys-platform",
	"sys-migrator",
}
