package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/internal/testutil"
	"github.com/deco-cx/gatekeeper/x/policy"
	"github.com/deco-cx/gatekeeper/x/role"
	"github.com/deco-cx/gatekeeper/x/team"
	"github.com/deco-cx/gatekeeper/x/util"
)

// The creator of a fresh team must be able to manage it immediately,
// with nothing configured beyond the seeded owner role and policy.
func TestTeamCreatorCanManage(t *testing.T) {

	ctx := context.Background()

	db, cleanupDB := testutil.CreateDB()
	defer cleanupDB()
	rdb, _, cleanupRDB := testutil.CreateRDB()
	defer cleanupRDB()
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	// seed the owner role and its policy the way the api does at boot
	err := db.Create(&core.Role{ID: core.OwnerRoleID, Name: core.OwnerRoleName, Description: "Team owner"}).Error
	assert.NoError(t, err)
	err = db.Create(&core.Policy{ID: core.OwnerPolicyID, Name: "owner", Statements: core.StatementList{
		{Effect: core.EffectAllow, Resource: core.ResourceTeamRolesManage},
		{Effect: core.EffectAllow, Resource: core.ResourceTeamMembersManage},
		{Effect: core.EffectAllow, Resource: core.ResourceTeamPoliciesManage},
	}}).Error
	assert.NoError(t, err)
	err = db.Create(&core.RolePolicy{RoleID: core.OwnerRoleID, PolicyID: core.OwnerPolicyID}).Error
	assert.NoError(t, err)

	config := util.Config{}
	teamService := team.NewService(team.NewRepository(db), mc, config)
	roleService := role.NewService(role.NewRepository(db), teamService, rdb, config)
	policyService := policy.NewService(policy.NewRepository(db), teamService, roleService, rdb, config)
	accessService := NewService(policyService)

	created, err := teamService.Create(ctx, "acme", "Acme", "U1")
	assert.NoError(t, err)
	ref := core.NewTeamRefFromID(created.ID)

	// 1. the creator holds the owner grant
	refs, err := roleService.GetUserRoles(ctx, "U1", ref)
	if assert.NoError(t, err) && assert.Len(t, refs, 1) {
		assert.Equal(t, core.OwnerRoleID, refs[0].RoleID)
	}

	// 2. the creator can manage the team right away
	ok, err := accessService.CanAccess(ctx, "U1", ref, core.ResourceTeamRolesManage, core.AuthContext{})
	if assert.NoError(t, err) {
		assert.True(t, ok)
	}

	// 3. and management operations actually go through
	_, err = roleService.CreateRole(ctx, ref, "viewer", "", nil)
	assert.NoError(t, err)

	// 4. a stranger still has nothing
	ok, err = accessService.CanAccess(ctx, "U2", ref, core.ResourceTeamRolesManage, core.AuthContext{})
	if assert.NoError(t, err) {
		assert.False(t, ok)
	}
}
