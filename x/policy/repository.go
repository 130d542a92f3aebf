//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package policy

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/deco-cx/gatekeeper/core"
)

// Repository is the interface for policy repository
type Repository interface {
	Get(ctx context.Context, id string) (core.Policy, error)
	ListByTeam(ctx context.Context, teamID uint) ([]core.Policy, error)
	Create(ctx context.Context, policy *core.Policy) error
	Update(ctx context.Context, policy *core.Policy) error
	Delete(ctx context.Context, id string) error

	GetStatementsByRoles(ctx context.Context, roleIDs []string) ([]core.Statement, error)
	GetTeamStatements(ctx context.Context, teamID uint) ([]core.Statement, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new policy repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id string) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Get")
	defer span.End()

	var policy core.Policy
	if err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Policy{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Policy{}, err
	}
	return policy, nil
}

func (r *repository) ListByTeam(ctx context.Context, teamID uint) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.ListByTeam")
	defer span.End()

	var policies []core.Policy
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("name").
		Find(&policies).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to list policies")
	}
	return policies, nil
}

func (r *repository) Create(ctx context.Context, policy *core.Policy) error {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Create")
	defer span.End()

	return r.db.WithContext(ctx).Create(policy).Error
}

func (r *repository) Update(ctx context.Context, policy *core.Policy) error {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Update")
	defer span.End()

	return r.db.WithContext(ctx).Save(policy).Error
}

// Delete removes a policy and any role links pointing at it.
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).
		Where("policy_id = ?", id).
		Delete(&core.RolePolicy{}).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return r.db.WithContext(ctx).Delete(&core.Policy{}, "id = ?", id).Error
}

// GetStatementsByRoles flattens the statements of every policy reachable
// through the given roles. No roles means no statements, not an error.
func (r *repository) GetStatementsByRoles(ctx context.Context, roleIDs []string) ([]core.Statement, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetStatementsByRoles")
	defer span.End()

	if len(roleIDs) == 0 {
		return []core.Statement{}, nil
	}

	var policies []core.Policy
	err := r.db.WithContext(ctx).
		Joins("JOIN role_policies ON role_policies.policy_id = policies.id").
		Where("role_policies.role_id IN ?", roleIDs).
		Find(&policies).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to resolve role statements")
	}

	return flatten(policies), nil
}

// GetTeamStatements flattens the statements of every policy scoped directly
// to the team, independent of any principal.
func (r *repository) GetTeamStatements(ctx context.Context, teamID uint) ([]core.Statement, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetTeamStatements")
	defer span.End()

	var policies []core.Policy
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Find(&policies).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to resolve team statements")
	}

	return flatten(policies), nil
}

func flatten(policies []core.Policy) []core.Statement {
	statements := []core.Statement{}
	for _, policy := range policies {
		statements = append(statements, policy.Statements...)
	}
	return statements
}
