// Package policy resolves the effective statement set for a principal in a
// team and owns every policy mutation. The user-derived and team-wide halves
// are cached and fetched independently; the hardening filter runs before
// anything reaches the cache.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/deco-cx/gatekeeper/core"
	"github.com/deco-cx/gatekeeper/x/cache"
	"github.com/deco-cx/gatekeeper/x/util"
)

var tracer = otel.Tracer("policy")

type service struct {
	repository Repository
	team       core.TeamService
	role       core.RoleService
	config     util.Config

	userPolicies *cache.Store[[]core.Statement]
	teamPolicies *cache.Store[[]core.Statement]
}

// NewService creates a new policy service
func NewService(repository Repository, team core.TeamService, role core.RoleService, rdb *redis.Client, config util.Config) core.PolicyService {
	ttl := config.Gatekeeper.CacheTTL()
	return &service{
		repository:   repository,
		team:         team,
		role:         role,
		config:       config,
		userPolicies: cache.NewStore[[]core.Statement](rdb, cache.NamespaceUserPolicies, ttl),
		teamPolicies: cache.NewStore[[]core.Statement](rdb, cache.NamespaceTeamPolicies, ttl),
	}
}

// GetUserStatements returns the union of the statements reachable through
// the principal's roles and the statements scoped directly to the team. The
// two halves resolve concurrently. A team that does not resolve is an error,
// not an empty set.
func (s *service) GetUserStatements(ctx context.Context, principal string, ref core.TeamRef) ([]core.Statement, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.GetUserStatements")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	var userStatements, teamStatements []core.Statement
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		userStatements, err = s.resolveUserStatements(egctx, principal, teamID)
		return err
	})
	eg.Go(func() error {
		var err error
		teamStatements, err = s.resolveTeamStatements(egctx, teamID)
		return err
	})
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return append(userStatements, teamStatements...), nil
}

func (s *service) resolveUserStatements(ctx context.Context, principal string, teamID uint) ([]core.Statement, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.ResolveUserStatements")
	defer span.End()

	key := userKey(principal, teamID)
	if statements, ok := s.userPolicies.Get(ctx, key); ok {
		return statements, nil
	}

	roles, err := s.role.GetUserRoles(ctx, principal, core.NewTeamRefFromID(teamID))
	if err != nil {
		return nil, err
	}

	roleIDs := make([]string, 0, len(roles))
	for _, role := range roles {
		roleIDs = append(roleIDs, role.RoleID)
	}

	statements, err := s.repository.GetStatementsByRoles(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	statements = s.applyHardeningFilter(statements)
	s.cacheStatements(ctx, s.userPolicies, key, statements)

	return statements, nil
}

func (s *service) resolveTeamStatements(ctx context.Context, teamID uint) ([]core.Statement, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.ResolveTeamStatements")
	defer span.End()

	key := teamKey(teamID)
	if statements, ok := s.teamPolicies.Get(ctx, key); ok {
		return statements, nil
	}

	statements, err := s.repository.GetTeamStatements(ctx, teamID)
	if err != nil {
		return nil, err
	}

	statements = s.applyHardeningFilter(statements)
	s.cacheStatements(ctx, s.teamPolicies, key, statements)

	return statements, nil
}

// applyHardeningFilter drops statements whose resource matches the internal
// denylist so they can never be returned to a caller or evaluated.
func (s *service) applyHardeningFilter(statements []core.Statement) []core.Statement {
	suffixes := s.config.Gatekeeper.DenySuffixes()
	filtered := make([]core.Statement, 0, len(statements))
	for _, statement := range statements {
		if matchesDenylist(statement.Resource, suffixes) {
			continue
		}
		filtered = append(filtered, statement)
	}
	return filtered
}

func matchesDenylist(resource string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(resource, suffix) {
			return true
		}
	}
	return false
}

func (s *service) cacheStatements(ctx context.Context, store *cache.Store[[]core.Statement], key string, statements []core.Statement) {
	if err := store.Set(ctx, key, statements); err != nil {
		slog.WarnContext(ctx, "failed to cache statements",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// GetPolicy returns a policy within the caller's team scope.
func (s *service) GetPolicy(ctx context.Context, ref core.TeamRef, id string) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.GetPolicy")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return core.Policy{}, err
	}

	policy, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Policy{}, err
	}

	if policy.TeamID == nil || *policy.TeamID != teamID {
		return core.Policy{}, core.NewErrorNotFound()
	}

	return policy, nil
}

// ListTeamPolicies returns the policies scoped to a team.
func (s *service) ListTeamPolicies(ctx context.Context, ref core.TeamRef) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.ListTeamPolicies")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return nil, err
	}

	return s.repository.ListByTeam(ctx, teamID)
}

// CreatePolicy creates a team-scoped policy. Statements are validated at
// authoring time; an unknown match kind is rejected here, never defaulted at
// evaluation.
func (s *service) CreatePolicy(ctx context.Context, ref core.TeamRef, name string, statements []core.Statement) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.CreatePolicy")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return core.Policy{}, err
	}

	if err := validateStatements(statements); err != nil {
		return core.Policy{}, err
	}

	policy := core.Policy{
		ID:         xid.New().String(),
		Name:       name,
		TeamID:     &teamID,
		Statements: statements,
	}
	if err := s.repository.Create(ctx, &policy); err != nil {
		return core.Policy{}, err
	}

	s.invalidateTeam(ctx, teamID)

	return policy, nil
}

// UpdatePolicy replaces a team-scoped policy's name and statements.
func (s *service) UpdatePolicy(ctx context.Context, ref core.TeamRef, id, name string, statements []core.Statement) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Service.UpdatePolicy")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return core.Policy{}, err
	}

	policy, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Policy{}, err
	}

	if policy.TeamID == nil {
		return core.Policy{}, core.NewErrorInvalidInput("system policies are read-only")
	}
	if *policy.TeamID != teamID {
		return core.Policy{}, core.NewErrorInvalidInput("policy belongs to another team")
	}

	if err := validateStatements(statements); err != nil {
		return core.Policy{}, err
	}

	if name != "" {
		policy.Name = name
	}
	policy.Statements = statements

	if err := s.repository.Update(ctx, &policy); err != nil {
		return core.Policy{}, err
	}

	s.invalidateTeam(ctx, teamID)

	return policy, nil
}

// DeletePolicy deletes a team-scoped policy and its role links.
func (s *service) DeletePolicy(ctx context.Context, ref core.TeamRef, id string) error {
	ctx, span := tracer.Start(ctx, "Policy.Service.DeletePolicy")
	defer span.End()

	teamID, err := s.team.ResolveID(ctx, ref)
	if err != nil {
		return err
	}

	policy, err := s.repository.Get(ctx, id)
	if err != nil {
		return err
	}

	if policy.TeamID == nil {
		return core.NewErrorInvalidInput("system policies are read-only")
	}
	if *policy.TeamID != teamID {
		return core.NewErrorInvalidInput("policy belongs to another team")
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateTeam(ctx, teamID)

	return nil
}

func userKey(principal string, teamID uint) string {
	return fmt.Sprintf("%s:%d", principal, teamID)
}

func teamKey(teamID uint) string {
	return strconv.FormatUint(uint64(teamID), 10)
}

func validateStatements(statements []core.Statement) error {
	for _, statement := range statements {
		if err := statement.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) invalidateTeam(ctx context.Context, teamID uint) {
	if err := s.teamPolicies.Delete(ctx, teamKey(teamID)); err != nil {
		slog.WarnContext(ctx, "cache invalidation failed, entry will expire at TTL",
			slog.String("key", teamKey(teamID)),
			slog.String("error", err.Error()),
		)
	}
}
