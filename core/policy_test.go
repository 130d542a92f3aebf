package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementValidate(t *testing.T) {

	// valid unconditional statement
	err := Statement{Effect: EffectAllow, Resource: "AGENTS_LIST"}.Validate()
	assert.NoError(t, err)

	// valid conditional statement
	err = Statement{
		Effect:   EffectDeny,
		Resource: "AGENTS_RUN",
		Condition: &MatchCondition{
			Kind:          MatchIsIntegration,
			IntegrationID: "slack-bot",
		},
	}.Validate()
	assert.NoError(t, err)

	// unknown effect
	err = Statement{Effect: "maybe", Resource: "AGENTS_LIST"}.Validate()
	assert.Error(t, err)

	// missing resource
	err = Statement{Effect: EffectAllow}.Validate()
	assert.Error(t, err)

	// unknown condition kind
	err = Statement{
		Effect:    EffectAllow,
		Resource:  "AGENTS_LIST",
		Condition: &MatchCondition{Kind: "has_magic_hat"},
	}.Validate()
	assert.Error(t, err)

	// is_integration without integrationId
	err = Statement{
		Effect:    EffectAllow,
		Resource:  "AGENTS_LIST",
		Condition: &MatchCondition{Kind: MatchIsIntegration},
	}.Validate()
	assert.Error(t, err)
}

func TestTeamRef(t *testing.T) {

	id, ok := TeamRef("42").AsID()
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = TeamRef("acme").AsID()
	assert.False(t, ok)

	ref := NewTeamRefFromID(7)
	id, ok = ref.AsID()
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}
