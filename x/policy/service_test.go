package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/deco-cx/gatekeeper/core"
	mock_core "github.com/deco-cx/gatekeeper/core/mock"
	"github.com/deco-cx/gatekeeper/internal/testutil"
	mock_policy "github.com/deco-cx/gatekeeper/x/policy/mock"
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

func setupRoleMock(ctrl *gomock.Controller, refs []core.RoleRef) *mock_core.MockRoleService {
	mockRole := mock_core.NewMockRoleService(ctrl)
	mockRole.EXPECT().
		GetUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(refs, nil).
		AnyTimes()
	return mockRole
}

// 1. the effective set is the union of role-derived and team-scoped statements
func TestGetUserStatementsUnion(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userStatements := []core.Statement{
		{Effect: core.EffectAllow, Resource: "AGENTS_LIST"},
	}
	teamStatements := []core.Statement{
		{Effect: core.EffectDeny, Resource: "AGENTS_DELETE"},
	}

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetStatementsByRoles(gomock.Any(), []string{"r1"}).
		Return(userStatements, nil).
		Times(1)
	mockRepo.EXPECT().
		GetTeamStatements(gomock.Any(), uint(5)).
		Return(teamStatements, nil).
		Times(1)

	roleMock := setupRoleMock(ctrl, []core.RoleRef{{RoleID: "r1", RoleName: "viewer"}})

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	statements, err := service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	if assert.NoError(t, err) {
		assert.Len(t, statements, 2)
		assert.Contains(t, statements, userStatements[0])
		assert.Contains(t, statements, teamStatements[0])
	}
}

// 2. both halves are served from cache on the second resolution
func TestGetUserStatementsCached(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetStatementsByRoles(gomock.Any(), gomock.Any()).
		Return([]core.Statement{{Effect: core.EffectAllow, Resource: "AGENTS_LIST"}}, nil).
		Times(1)
	mockRepo.EXPECT().
		GetTeamStatements(gomock.Any(), uint(5)).
		Return([]core.Statement{}, nil).
		Times(1)

	roleMock := setupRoleMock(ctrl, []core.RoleRef{{RoleID: "r1", RoleName: "viewer"}})

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	first, err := service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)

	second, err := service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// 3. denylisted resources are stripped before anything reaches the cache
func TestHardeningFilter(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetStatementsByRoles(gomock.Any(), gomock.Any()).
		Return([]core.Statement{
			{Effect: core.EffectAllow, Resource: "AGENTS_LIST"},
			{Effect: core.EffectAllow, Resource: "DEPLOY_SCRIPT"},
		}, nil).
		Times(1)
	mockRepo.EXPECT().
		GetTeamStatements(gomock.Any(), uint(5)).
		Return([]core.Statement{
			{Effect: core.EffectDeny, Resource: "CLEANUP_SCRIPT"},
		}, nil).
		Times(1)

	roleMock := setupRoleMock(ctrl, []core.RoleRef{{RoleID: "r1", RoleName: "viewer"}})

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	statements, err := service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	if assert.NoError(t, err) {
		assert.Len(t, statements, 1)
		assert.Equal(t, "AGENTS_LIST", statements[0].Resource)
	}
}

// 4. a team that does not resolve is an error, not an empty set
func TestGetUserStatementsMissingTeam(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mock_core.NewMockTeamService(ctrl)
	mockTeam.EXPECT().
		ResolveID(gomock.Any(), gomock.Any()).
		Return(uint(0), core.NewErrorNotFound()).
		Times(1)

	mockRepo := mock_policy.NewMockRepository(ctrl)
	roleMock := setupRoleMock(ctrl, nil)

	service := NewService(mockRepo, mockTeam, roleMock, rdb, util.Config{})

	_, err := service.GetUserStatements(ctx, "U1", core.TeamRef("ghost"))
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

// 5. statements with an unknown match kind are rejected at authoring time
func TestCreatePolicyRejectsUnknownMatchKind(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	roleMock := setupRoleMock(ctrl, nil)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	_, err := service.CreatePolicy(ctx, core.TeamRef("5"), "bad", []core.Statement{
		{
			Effect:    core.EffectAllow,
			Resource:  "AGENTS_RUN",
			Condition: &core.MatchCondition{Kind: "has_magic_hat"},
		},
	})
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidInput{}, err)
}

// 6. an update purges the team-scoped half so the next check sees it
func TestUpdatePolicyInvalidatesTeamStatements(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stale := []core.Statement{{Effect: core.EffectAllow, Resource: "AGENTS_DELETE"}}
	fresh := []core.Statement{{Effect: core.EffectDeny, Resource: "AGENTS_DELETE"}}

	existing := core.Policy{ID: "p1", Name: "agents", TeamID: uintPtr(5), Statements: stale}

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetStatementsByRoles(gomock.Any(), gomock.Any()).
		Return([]core.Statement{}, nil).
		AnyTimes()
	mockRepo.EXPECT().
		GetTeamStatements(gomock.Any(), uint(5)).
		Return(stale, nil).
		Times(1)
	mockRepo.EXPECT().
		Get(gomock.Any(), "p1").
		Return(existing, nil).
		Times(1)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	mockRepo.EXPECT().
		GetTeamStatements(gomock.Any(), uint(5)).
		Return(fresh, nil).
		Times(1)

	roleMock := setupRoleMock(ctrl, nil)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	statements, err := service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Equal(t, stale, statements)

	_, err = service.UpdatePolicy(ctx, core.TeamRef("5"), "p1", "agents", fresh)
	assert.NoError(t, err)

	statements, err = service.GetUserStatements(ctx, "U1", core.TeamRef("5"))
	assert.NoError(t, err)
	assert.Equal(t, fresh, statements)
}

// 7. team scoping guards policy mutations
func TestDeleteForeignPolicyRejected(t *testing.T) {

	ctx := context.Background()

	rdb, _, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_policy.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), "p9").
		Return(core.Policy{ID: "p9", Name: "other", TeamID: uintPtr(7)}, nil).
		Times(1)

	roleMock := setupRoleMock(ctrl, nil)

	service := NewService(mockRepo, setupTeamMock(ctrl, 5), roleMock, rdb, util.Config{})

	err := service.DeletePolicy(ctx, core.TeamRef("5"), "p9")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidInput{}, err)
}
