package access

import (
	"github.com/deco-cx/gatekeeper/core"
)

// satisfied reports whether a statement's match condition holds for the
// request context. A statement without a condition is unconditionally
// satisfied once resource equality holds.
//
// The switch is the closed dispatch over core.MatchKind: a kind missing here
// never matches. Unknown kinds are already rejected at authoring time by
// MatchCondition.Validate.
func satisfied(condition *core.MatchCondition, actx core.AuthContext) bool {
	if condition == nil {
		return true
	}

	switch condition.Kind {
	case core.MatchIsIntegration:
		return actx.IntegrationID != "" && actx.IntegrationID == condition.IntegrationID
	}

	return false
}
