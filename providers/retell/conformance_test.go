package retell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitk-cp/voicebridge/voice"
)

func TestConformance_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(newFakeClient().client())
	assert.Equal(t, ProviderID, p.ProviderID)

	agent, err := p.Agents.Create(ctx, voice.CreateAgentParams{Name: voice.String("a")})
	require.NoError(t, err)
	gotAgent, err := p.Agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.ID, gotAgent.ID)
	assert.Equal(t, agent.Provider, gotAgent.Provider)

	call, err := p.Calls.Create(ctx, voice.CreateCallParams{ToNumber: "+1"})
	require.NoError(t, err)
	gotCall, err := p.Calls.Get(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, call.ID, gotCall.ID)
	assert.Equal(t, call.Provider, gotCall.Provider)

	prov, ok := p.PhoneNumbers.(voice.PhoneNumberProvisioner)
	require.True(t, ok)
	pn, err := prov.Create(ctx, voice.CreatePhoneNumberParams{})
	require.NoError(t, err)
	gotPN, err := p.PhoneNumbers.Get(ctx, pn.ID)
	require.NoError(t, err)
	assert.Equal(t, pn.ID, gotPN.ID)
	assert.Equal(t, pn.Provider, gotPN.Provider)

	kb, err := p.KnowledgeBase.Create(ctx, voice.CreateKnowledgeBaseParams{Name: "kb"})
	require.NoError(t, err)
	gotKB, err := p.KnowledgeBase.Get(ctx, kb.ID)
	require.NoError(t, err)
	assert.Equal(t, kb.ID, gotKB.ID)
	assert.Equal(t, kb.Provider, gotKB.Provider)
}
