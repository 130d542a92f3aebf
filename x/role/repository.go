//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package role

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/deco-cx/gatekeeper/core"
)

// Repository is the interface for role repository
type Repository interface {
	Get(ctx context.Context, id string) (core.Role, error)
	ListByTeam(ctx context.Context, teamID uint) ([]core.Role, error)
	Create(ctx context.Context, role *core.Role) error
	Update(ctx context.Context, role *core.Role) error
	Delete(ctx context.Context, id string) error

	GetUserRoles(ctx context.Context, principal string, teamID uint) ([]core.RoleRef, error)

	CreateMemberRole(ctx context.Context, link *core.MemberRole) error
	DeleteMemberRole(ctx context.Context, teamID uint, principal, roleID string) error
	DeleteMemberRolesByRole(ctx context.Context, teamID uint, roleID string) error
	ListRoleHolders(ctx context.Context, teamID uint, roleID string) ([]string, error)
	CountRoleHolders(ctx context.Context, teamID uint, roleID string) (int64, error)

	CreateRolePolicy(ctx context.Context, link *core.RolePolicy) error
	DeleteRolePolicies(ctx context.Context, roleID string) error
	ListRolePolicyIDs(ctx context.Context, roleID string) ([]string, error)
	DeleteOrphanedPolicies(ctx context.Context, policyIDs []string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new role repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.Get")
	defer span.End()

	var role core.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Role{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Role{}, err
	}
	return role, nil
}

// ListByTeam returns roles scoped to the team plus system roles.
func (r *repository) ListByTeam(ctx context.Context, teamID uint) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.ListByTeam")
	defer span.End()

	var roles []core.Role
	err := r.db.WithContext(ctx).
		Where("team_id = ? OR team_id IS NULL", teamID).
		Order("name").
		Find(&roles).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list roles")
	}
	return roles, nil
}

func (r *repository) Create(ctx context.Context, role *core.Role) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.Create")
	defer span.End()

	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) Update(ctx context.Context, role *core.Role) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.Update")
	defer span.End()

	return r.db.WithContext(ctx).Save(role).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.Delete")
	defer span.End()

	return r.db.WithContext(ctx).Delete(&core.Role{}, "id = ?", id).Error
}

// GetUserRoles returns the roles granted to a principal within a team.
// A principal with no membership yields an empty slice, not an error.
func (r *repository) GetUserRoles(ctx context.Context, principal string, teamID uint) ([]core.RoleRef, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.GetUserRoles")
	defer span.End()

	refs := []core.RoleRef{}
	err := r.db.WithContext(ctx).
		Model(&core.MemberRole{}).
		Select("roles.id as role_id, roles.name as role_name").
		Joins("JOIN roles ON roles.id = member_roles.role_id").
		Where("member_roles.principal = ? AND member_roles.team_id = ?", principal, teamID).
		Scan(&refs).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to resolve user roles")
	}
	return refs, nil
}

func (r *repository) CreateMemberRole(ctx context.Context, link *core.MemberRole) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.CreateMemberRole")
	defer span.End()

	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) DeleteMemberRole(ctx context.Context, teamID uint, principal, roleID string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.DeleteMemberRole")
	defer span.End()

	return r.db.WithContext(ctx).
		Where("team_id = ? AND principal = ? AND role_id = ?", teamID, principal, roleID).
		Delete(&core.MemberRole{}).Error
}

func (r *repository) DeleteMemberRolesByRole(ctx context.Context, teamID uint, roleID string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.DeleteMemberRolesByRole")
	defer span.End()

	return r.db.WithContext(ctx).
		Where("team_id = ? AND role_id = ?", teamID, roleID).
		Delete(&core.MemberRole{}).Error
}

func (r *repository) ListRoleHolders(ctx context.Context, teamID uint, roleID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.ListRoleHolders")
	defer span.End()

	var principals []string
	err := r.db.WithContext(ctx).
		Model(&core.MemberRole{}).
		Where("team_id = ? AND role_id = ?", teamID, roleID).
		Pluck("principal", &principals).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list role holders")
	}
	return principals, nil
}

func (r *repository) CountRoleHolders(ctx context.Context, teamID uint, roleID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.CountRoleHolders")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&core.MemberRole{}).
		Where("team_id = ? AND role_id = ?", teamID, roleID).
		Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to count role holders")
	}
	return count, nil
}

func (r *repository) CreateRolePolicy(ctx context.Context, link *core.RolePolicy) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.CreateRolePolicy")
	defer span.End()

	return r.db.WithContext(ctx).Create(link).Error
}

func (r *repository) DeleteRolePolicies(ctx context.Context, roleID string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.DeleteRolePolicies")
	defer span.End()

	return r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Delete(&core.RolePolicy{}).Error
}

func (r *repository) ListRolePolicyIDs(ctx context.Context, roleID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.ListRolePolicyIDs")
	defer span.End()

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&core.RolePolicy{}).
		Where("role_id = ?", roleID).
		Pluck("policy_id", &ids).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list role policy links")
	}
	return ids, nil
}

// DeleteOrphanedPolicies removes the given policies when no role link
// references them anymore.
func (r *repository) DeleteOrphanedPolicies(ctx context.Context, policyIDs []string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.DeleteOrphanedPolicies")
	defer span.End()

	if len(policyIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id IN ? AND NOT EXISTS (SELECT 1 FROM role_policies WHERE role_policies.policy_id = policies.id)", policyIDs).
		Delete(&core.Policy{}).Error
}
