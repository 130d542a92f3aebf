//go:build wireinject

package gatekeeper

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/x/access"
	"github.com/deco-cx/gatekeeper/x/policy"
	"github.com/deco-cx/gatekeeper/x/role"
	"github.com/deco-cx/gatekeeper/x/team"
	"github.com/deco-cx/gatekeeper/x/util"
)

// Lv0
var teamServiceProvider = wire.NewSet(team.NewService, team.NewRepository)

// Lv1
var roleServiceProvider = wire.NewSet(role.NewService, role.NewRepository, SetupTeamService)

// Lv2
var policyServiceProvider = wire.NewSet(policy.NewService, policy.NewRepository, SetupTeamService, SetupRoleService)

// Lv3
var accessServiceProvider = wire.NewSet(access.NewService, SetupPolicyService)

// -----------

func SetupTeamService(db *gorm.DB, mc *memcache.Client, config util.Config) core.TeamService {
	wire.Build(teamServiceProvider)
	return nil
}

func SetupRoleService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) core.RoleService {
	wire.Build(roleServiceProvider)
	return nil
}

func SetupPolicyService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) core.PolicyService {
	wire.Build(policyServiceProvider)
	return nil
}

func SetupAccessService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config util.Config) core.AccessService {
	wire.Build(accessServiceProvider)
	return nil
}
