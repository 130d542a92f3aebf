package role

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/deco-cx/gatekeeper/core"
	mock_core "github.com/deco-cx/gatekeeper/core/mock"
	"github.com/deco-cx/gatekeeper/internal/testutil"
	mock_role "github.com/deco-cx/gatekeeper/x/role/mock"
	"github.com/deco-cx/gatekeeper/x/util"
)

func uintPtr(v uint) *uint {
	return &v
}

func setupTeamMock(ctrl *gomock.Controller, teamID uint) *mock_core.MockTeamService {
	mockTeam := mock_core.NewMockTeamService(ctrl)
	mockTeam.EXPECT().
		ResolveID(gomock.Any(), gomock.Any()).
		Return(teamID, nil).
		AnyTimes()
	return mockTeam
}

// 1. resolved roles are served from cache until a mutation purges them
func TestGetUserRolesCached(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refs := []core.RoleRef{{RoleID: "r1", RoleName: "viewer"}}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetUserRoles(gomock.Any(), "U1", uint(5)).
		Return(refs, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	got, err := service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Equal(t, refs, got)

	// second call is a cache hit, the repository is not consulted again
	got, err = service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Equal(t, refs, got)
}

// 2. a grant purges the principal's cached roles
func TestGrantInvalidatesUserRoles(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	role := core.Role{ID: "r1", Name: "viewer", TeamID: uintPtr(5)}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetUserRoles(gomock.Any(), "U1", uint(5)).
		Return([]core.RoleRef{}, nil).
		Times(1)
	mockRepo.EXPECT().
		Get(gomock.Any(), "r1").
		Return(role, nil).
		Times(1)
	mockRepo.EXPECT().
		CreateMemberRole(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	mockRepo.EXPECT().
		GetUserRoles(gomock.Any(), "U1", uint(5)).
		Return([]core.RoleRef{{RoleID: "r1", RoleName: "viewer"}}, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	got, err := service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Len(t, got, 0)

	err = service.UpdateUserRole(ctx, core.TeamRef("5"), "U1", "r1", true)
	assert.NoError(t, err)

	// the cached empty set was purged, the new grant is visible
	got, err = service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

// 3. revoking the last owner grant of a team is rejected before any write
func TestRevokeLastOwnerRejected(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRole := core.Role{ID: core.OwnerRoleID, Name: core.OwnerRoleName}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), core.OwnerRoleID).
		Return(ownerRole, nil).
		Times(1)
	mockRepo.EXPECT().
		CountRoleHolders(gomock.Any(), uint(5), core.OwnerRoleID).
		Return(int64(1), nil).
		Times(1)
	// no DeleteMemberRole expectation: the write must not happen

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	err := service.UpdateUserRole(ctx, core.TeamRef("5"), "U1", core.OwnerRoleID, false)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidInput{}, err)
}

// 4. revoking an owner grant succeeds while another owner remains
func TestRevokeOwnerWithRemainingOwner(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerRole := core.Role{ID: core.OwnerRoleID, Name: core.OwnerRoleName}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), core.OwnerRoleID).
		Return(ownerRole, nil).
		Times(1)
	mockRepo.EXPECT().
		CountRoleHolders(gomock.Any(), uint(5), core.OwnerRoleID).
		Return(int64(2), nil).
		Times(1)
	mockRepo.EXPECT().
		DeleteMemberRole(gomock.Any(), uint(5), "U1", core.OwnerRoleID).
		Return(nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	err := service.UpdateUserRole(ctx, core.TeamRef("5"), "U1", core.OwnerRoleID, false)
	assert.NoError(t, err)
}

// 5. system roles are read-only for team management
func TestUpdateSystemRoleRejected(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), core.OwnerRoleID).
		Return(core.Role{ID: core.OwnerRoleID, Name: core.OwnerRoleName}, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	_, err := service.UpdateRole(ctx, core.TeamRef("5"), core.OwnerRoleID, "new-name", "")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidInput{}, err)
}

// 5.1 a name-only update keeps the existing description
func TestUpdateRolePreservesDescription(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := core.Role{ID: "r1", Name: "viewer", Description: "read-only access", TeamID: uintPtr(5)}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), "r1").
		Return(existing, nil).
		Times(1)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, role *core.Role) error {
			assert.Equal(t, "auditor", role.Name)
			assert.Equal(t, "read-only access", role.Description)
			return nil
		}).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	updated, err := service.UpdateRole(ctx, core.TeamRef("5"), "r1", "auditor", "")
	assert.NoError(t, err)
	assert.Equal(t, "read-only access", updated.Description)
}

// 6. roles of another team cannot be mutated through this team's scope
func TestDeleteForeignRoleRejected(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), "r9").
		Return(core.Role{ID: "r9", Name: "admin", TeamID: uintPtr(7)}, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	err := service.DeleteRole(ctx, core.TeamRef("5"), "r9")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidInput{}, err)
}

// 7. the listing surface hides bootstrap role ids but keeps other system roles
func TestListTeamRolesHidesBootstrapRoles(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		ListByTeam(gomock.Any(), uint(5)).
		Return([]core.Role{
			{ID: core.OwnerRoleID, Name: core.OwnerRoleName},
			{ID: "sys-platform", Name: "platform"},
			{ID: "r1", Name: "viewer", TeamID: uintPtr(5)},
		}, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	roles, err := service.ListTeamRoles(ctx, core.TeamRef("5"))
	if assert.NoError(t, err) {
		assert.Len(t, roles, 2)
		for _, role := range roles {
			assert.NotEqual(t, "sys-platform", role.ID)
		}
	}
}

// 8. deleting a role purges the caches of every principal that held it
func TestDeleteRoleCascade(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	role := core.Role{ID: "r1", Name: "viewer", TeamID: uintPtr(5)}

	mockRepo := mock_role.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "r1").Return(role, nil).Times(1)
	mockRepo.EXPECT().ListRolePolicyIDs(gomock.Any(), "r1").Return([]string{"p1"}, nil).Times(1)
	mockRepo.EXPECT().ListRoleHolders(gomock.Any(), uint(5), "r1").Return([]string{"U1", "U2"}, nil).Times(1)
	mockRepo.EXPECT().DeleteRolePolicies(gomock.Any(), "r1").Return(nil).Times(1)
	mockRepo.EXPECT().DeleteOrphanedPolicies(gomock.Any(), []string{"p1"}).Return(nil).Times(1)
	mockRepo.EXPECT().DeleteMemberRolesByRole(gomock.Any(), uint(5), "r1").Return(nil).Times(1)
	mockRepo.EXPECT().Delete(gomock.Any(), "r1").Return(nil).Times(1)

	mockRepo.EXPECT().
		GetUserRoles(gomock.Any(), "U1", uint(5)).
		Return([]core.RoleRef{{RoleID: "r1", RoleName: "viewer"}}, nil).
		Times(1)
	mockRepo.EXPECT().
		GetUserRoles(gomock.Any(), "U1", uint(5)).
		Return([]core.RoleRef{}, nil).
		Times(1)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), rdb, util.Config{})

	// warm the holder's cache
	got, err := service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	err = service.DeleteRole(ctx, core.TeamRef("5"), "r1")
	assert.NoError(t, err)

	// the holder's cached roles were purged along with the role
	got, err = service.GetUserRoles(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Len(t, got, 0)
}
