//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type TeamService interface {
	ResolveID(ctx context.Context, ref TeamRef) (uint, error)
	Get(ctx context.Context, id uint) (Team, error)
	Create(ctx context.Context, slug, name, owner string) (Team, error)
	List(ctx context.Context) ([]Team, error)
}

type RoleService interface {
	GetUserRoles(ctx context.Context, principal string, ref TeamRef) ([]RoleRef, error)
	ListTeamRoles(ctx context.Context, ref TeamRef) ([]Role, error)
	CreateRole(ctx context.Context, ref TeamRef, name, description string, policyIDs []string) (Role, error)
	UpdateRole(ctx context.Context, ref TeamRef, id, name, description string) (Role, error)
	DeleteRole(ctx context.Context, ref TeamRef, id string) error
	UpdateUserRole(ctx context.Context, ref TeamRef, principal, roleID string, grant bool) error
}

type PolicyService interface {
	GetUserStatements(ctx context.Context, principal string, ref TeamRef) ([]Statement, error)
	GetPolicy(ctx context.Context, ref TeamRef, id string) (Policy, error)
	ListTeamPolicies(ctx context.Context, ref TeamRef) ([]Policy, error)
	CreatePolicy(ctx context.Context, ref TeamRef, name string, statements []Statement) (Policy, error)
	UpdatePolicy(ctx context.Context, ref TeamRef, id, name string, statements []Statement) (Policy, error)
	DeletePolicy(ctx context.Context, ref TeamRef, id string) error
}

type AccessService interface {
	CanAccess(ctx context.Context, principal string, ref TeamRef, resource string, actx AuthContext) (bool, error)
}
