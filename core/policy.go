package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

// MatchKind enumerates the closed set of statement match conditions.
// Adding a kind means extending Validate here and the dispatch in x/access.
type MatchKind string

const (
	MatchIsIntegration MatchKind = "is_integration"
)

// MatchCondition narrows when a statement applies beyond resource equality.
type MatchCondition struct {
	Kind          MatchKind `json:"kind"`
	IntegrationID string    `json:"integrationId,omitempty"`
}

// Validate rejects unknown kinds and malformed parameters at authoring time.
func (m MatchCondition) Validate() error {
	switch m.Kind {
	case MatchIsIntegration:
		if m.IntegrationID == "" {
			return NewErrorInvalidInput("is_integration requires integrationId")
		}
		return nil
	}
	return NewErrorInvalidInput(fmt.Sprintf("unknown match condition kind: %s", m.Kind))
}

// Statement is a single allow/deny rule for one resource. Resources are
// opaque action names compared by equality only.
type Statement struct {
	Effect    string          `json:"effect"`
	Resource  string          `json:"resource"`
	Condition *MatchCondition `json:"matchCondition,omitempty"`
}

func (s Statement) Validate() error {
	if s.Effect != EffectAllow && s.Effect != EffectDeny {
		return NewErrorInvalidInput(fmt.Sprintf("invalid statement effect: %s", s.Effect))
	}
	if s.Resource == "" {
		return NewErrorInvalidInput("statement resource is required")
	}
	if s.Condition != nil {
		return s.Condition.Validate()
	}
	return nil
}

// StatementList is the jsonb column holding a policy's statements.
type StatementList []Statement

func (s StatementList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StatementList) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("unsupported column type for StatementList: %T", value)
}

// AuthContext carries the caller-supplied request context evaluated by
// match conditions.
type AuthContext struct {
	IntegrationID string `json:"integrationId,omitempty"`
}
