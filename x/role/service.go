// Package role resolves the roles granted to a principal within a team and
// owns every role mutation. Each mutation purges the cache entries it could
// have invalidated; purge failures are logged and left to TTL expiry.
package role

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/x/cache"
	"github.com/deco-cx/gatekeeper/x/util"
)

var tracer = otel.Tracer("role")

type service struct {
	repository Repository
	team       core.TeamService

	userRoles    *cache.Store[[]core.RoleRef]
	teamRoles    *cache.Store[[]core.Role]
	userPolicies *cache.Store[[]core.Statement]
	teamPolicies *cache.Store[[]core.Statement]
}

// NewService creates a new role service
func NewService(repository Repository, team core.TeamService, rdb *redis.Client, config util.Config) core.RoleService {
	ttl := config.Gatekeeper.CacheTTL()
	return &service{
		repository:   repository,
		team:         team,
		userRoles:    cache.NewStore[[]core.RoleRef](rdb, cache.NamespaceUserRoles, ttl),
		teamRoles:    cache.NewStore[[]core.Role](rdb, cache.NamespaceTeamRoles, ttl),
		userPolicies: cache.NewStore[[]core.Statement](rdb, cache.NamespaceUserPolicies, ttl),
		teamPolicies: cache.NewStore[[]core.Statement](rdb, cache.NamespaceTeamPolicies, ttl),
	}
}

func userKey(principal string, teamID uint) string {
	return fmt.Sprintf("%s:%d", principal, teamID)
}

func teamKey(teamID uint) string {
	return strconv.FormatUint(uint64(teamID), 10)
}

// GetUserRoles returns the roles granted to a principal within a team. A
// principal without a membership record resolves to an empty set, which the
// evaluator treats as a denial.
func (s *service) GetUserRoles(ctx context.Context, principal string, ref core.TeamRef) ([]core.RoleRef, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.GetUserRoles")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	key := userKey(principal, teamID)
	if refs, ok := s.userRoles.Get(ctx, key); ok {
		return refs, nil
	}

	refs, err := s.repository.GetUserRoles(ctx, principal, teamID)
	if err != nil {
		return nil, err
	}

	if err := s.userRoles.Set(ctx, key, refs); err != nil {
		slog.WarnContext(ctx, "failed to cache user roles",
			slog.String("principal", principal),
			slog.String("error", err.Error()),
		)
	}

	return refs, nil
}

// ListTeamRoles returns the roles visible to a team's management surface:
// team-scoped roles plus system roles, minus the hidden bootstrap ids.
func (s *service) ListTeamRoles(ctx context.Context, ref core.TeamRef) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.ListTeamRoles")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	key := teamKey(teamID)
	if roles, ok := s.teamRoles.Get(ctx, key); ok {
		return roles, nil
	}

	roles, err := s.repository.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	visible := make([]core.Role, 0, len(roles))
	for _, role := range roles {
		if slices.Contains(core.HiddenRoleIDs, role.ID) {
			continue
		}
		visible = append(visible, role)
	}

	if err := s.teamRoles.Set(ctx, key, visible); err != nil {
		slog.WarnContext(ctx, "failed to cache team roles",
			slog.String("error", err.Error()),
		)
	}

	return visible, nil
}

// CreateRole creates a team-scoped role, optionally attached to existing
// policies.
func (s *service) CreateRole(ctx context.Context, ref core.TeamRef, name, description string, policyIDs []string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.CreateRole")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return core.Role{}, err
	}

	if name == "" {
		return core.Role{}, core.NewErrorInvalidInput("role name is required")
	}

	role := core.Role{
		ID:          xid.New().String(),
		Name:        name,
		Description: description,
		TeamID:      &teamID,
	}
	if err := s.repository.Create(ctx, &role); err != nil {
		return core.Role{}, err
	}

	for _, policyID := range policyIDs {
		err := s.repository.CreateRolePolicy(ctx, &core.RolePolicy{
			RoleID:   role.ID,
			PolicyID: policyID,
		})
		if err != nil {
			return core.Role{}, err
		}
	}

	s.invalidate(ctx, s.teamRoles.Delete, teamKey(teamID))

	return role, nil
}

// UpdateRole updates a team-scoped role's name and description. Empty
// fields preserve the existing values.
func (s *service) UpdateRole(ctx context.Context, ref core.TeamRef, id, name, description string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.UpdateRole")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return core.Role{}, err
	}

	role, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Role{}, err
	}

	if err := guardTeamScoped(role, teamID); err != nil {
		return core.Role{}, err
	}

	if name != "" {
		role.Name = name
	}
	if description != "" {
		role.Description = description
	}

	if err := s.repository.Update(ctx, &role); err != nil {
		return core.Role{}, err
	}

	s.invalidate(ctx, s.teamRoles.Delete, teamKey(teamID))

	return role, nil
}

// DeleteRole deletes a team-scoped role and cascades: role-policy links,
// orphaned policies, member-role links, then cache entries for every
// principal that held the role.
func (s *service) DeleteRole(ctx context.Context, ref core.TeamRef, id string) error {
	ctx, span := tracer.Start(ctx, "Role.Service.DeleteRole")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return err
	}

	role, err := s.repository.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := guardTeamScoped(role, teamID); err != nil {
		return err
	}

	policyIDs, err := s.repository.ListRolePolicyIDs(ctx, id)
	if err != nil {
		return err
	}

	holders, err := s.repository.ListRoleHolders(ctx, teamID, id)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteRolePolicies(ctx, id); err != nil {
		return err
	}
	if err := s.repository.DeleteOrphanedPolicies(ctx, policyIDs); err != nil {
		return err
	}
	if err := s.repository.DeleteMemberRolesByRole(ctx, teamID, id); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, s.teamRoles.Delete, teamKey(teamID))
	s.invalidate(ctx, s.teamPolicies.Delete, teamKey(teamID))
	for _, principal := range holders {
		s.invalidate(ctx, s.userRoles.Delete, userKey(principal, teamID))
		s.invalidate(ctx, s.userPolicies.Delete, userKey(principal, teamID))
	}

	return nil
}

// UpdateUserRole grants or revokes a role for a principal. Revoking the last
// owner grant of a team is rejected before any write.
func (s *service) UpdateUserRole(ctx context.Context, ref core.TeamRef, principal, roleID string, grant bool) error {
	ctx, span := tracer.Start(ctx, "Role.Service.UpdateUserRole")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return err
	}

	role, err := s.repository.Get(ctx, roleID)
	if err != nil {
		return err
	}

	if role.TeamID != nil && *role.TeamID != teamID {
		return core.NewErrorInvalidInput("role belongs to another team")
	}

	if grant {
		err = s.repository.CreateMemberRole(ctx, &core.MemberRole{
			TeamID:    teamID,
			Principal: principal,
			RoleID:    roleID,
		})
		if err != nil {
			return err
		}
	} else {
		if role.Name == core.OwnerRoleName {
			count, err := s.repository.CountRoleHolders(ctx, teamID, roleID)
			if err != nil {
				return err
			}
			if count <= 1 {
				return core.NewErrorInvalidInput("cannot revoke the last owner of a team")
			}
		}
		if err := s.repository.DeleteMemberRole(ctx, teamID, principal, roleID); err != nil {
			return err
		}
	}

	s.invalidate(ctx, s.userRoles.Delete, userKey(principal, teamID))
	s.invalidate(ctx, s.userPolicies.Delete, userKey(principal, teamID))

	return nil
}

// guardTeamScoped rejects mutations of system roles and roles owned by a
// different team.
func guardTeamScoped(role core.Role, teamID uint) error {
	if role.TeamID == nil {
		return core.NewErrorInvalidInput("system roles are read-only")
	}
	if *role.TeamID != teamID {
		return core.NewErrorInvalidInput("role belongs to another team")
	}
	return nil
}

// invalidate is best-effort: the underlying write already succeeded, so a
// failed purge only extends staleness to the TTL bound.
func (s *service) invalidate(ctx context.Context, del func(context.Context, string) error, key string) {
	if err := del(ctx, key); err != nil {
		slog.WarnContext(ctx, "cache invalidation failed, entry will expire at TTL",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
