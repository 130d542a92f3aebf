// Package access decides whether a principal may perform an action within a
// team. The decision is fail-closed: no statements, no match, or no
// membership all evaluate to a denial. Infrastructure failures surface as
// errors so callers can tell "denied" from "undetermined".
package access

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/deco-cx/gatekeeper/core"
)

var tracer = otel.Tracer("access")

type service struct {
	policy core.PolicyService
}

// NewService creates a new access service
func NewService(policy core.PolicyService) core.AccessService {
	return &service{policy: policy}
}

// CanAccess resolves the principal's effective statement set and evaluates
// it against the requested resource.
func (s *service) CanAccess(ctx context.Context, principal string, ref core.TeamRef, resource string, actx core.AuthContext) (bool, error) {
	ctx, span := tracer.Start(ctx, "Access.Service.CanAccess")
	defer span.End()

	span.SetAttributes(
		attribute.String("principal", principal),
		attribute.String("team", ref.String()),
		attribute.String("resource", resource),
	)

	statements, err := s.policy.GetUserStatements(ctx, principal, ref)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	allowed := Evaluate(statements, resource, actx)
	span.SetAttributes(attribute.Bool("allowed", allowed))
	return allowed, nil
}

// Evaluate applies a resolved statement set to a single resource. Trusted
// internal callers with an already-resolved set use it directly.
//
// A matching deny is final regardless of position in the set, so the scan
// never short-circuits on an allow. An empty set denies.
func Evaluate(statements []core.Statement, resource string, actx core.AuthContext) bool {
	if len(statements) == 0 {
		return false
	}

	allowed := false
	for _, statement := range statements {
		if statement.Resource != resource {
			continue
		}
		if !satisfied(statement.Condition, actx) {
			continue
		}
		if statement.Effect == core.EffectDeny {
			return false
		}
		if statement.Effect == core.EffectAllow {
			allowed = true
		}
	}
	return allowed
}
