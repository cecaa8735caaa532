package voice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullAgents() *AgentFuncs {
	return &AgentFuncs{
		CreateFunc: func(context.Context, CreateAgentParams) (*Agent, error) { return &Agent{}, nil },
		ListFunc:   func(context.Context, *ListAgentsParams) (*Page[Agent], error) { return SinglePage[Agent](nil), nil },
		GetFunc:    func(context.Context, string) (*Agent, error) { return &Agent{}, nil },
		UpdateFunc: func(context.Context, string, UpdateAgentParams) (*Agent, error) { return &Agent{}, nil },
		DeleteFunc: func(context.Context, string) error { return nil },
	}
}

func fullCalls() *CallFuncs {
	return &CallFuncs{
		CreateFunc: func(context.Context, CreateCallParams) (*Call, error) { return &Call{}, nil },
		ListFunc:   func(context.Context, *ListCallsParams) (*Page[Call], error) { return SinglePage[Call](nil), nil },
		GetFunc:    func(context.Context, string) (*Call, error) { return &Call{}, nil },
		UpdateFunc: func(context.Context, string, UpdateCallParams) (*Call, error) { return &Call{}, nil },
		DeleteFunc: func(context.Context, string) error { return nil },
	}
}

func fullPhoneNumbers() *PhoneNumberFuncs {
	return &PhoneNumberFuncs{
		ListFunc: func(context.Context, *ListPhoneNumbersParams) (*Page[PhoneNumber], error) {
			return SinglePage[PhoneNumber](nil), nil
		},
		GetFunc: func(context.Context, string) (*PhoneNumber, error) { return &PhoneNumber{}, nil },
	}
}

func minimalProvider() *Provider {
	return &Provider{
		ProviderID:   "custom",
		Agents:       fullAgents(),
		Calls:        fullCalls(),
		PhoneNumbers: fullPhoneNumbers(),
	}
}

func TestDefineProvider_Minimal(t *testing.T) {
	p := minimalProvider()
	got, err := DefineProvider(p)
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Nil(t, got.Tools)
	assert.Nil(t, got.Files)
	assert.Nil(t, got.KnowledgeBase)
}

func TestDefineProvider_MissingMethod(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Provider)
		want   string
	}{
		{"agents.create", func(p *Provider) { p.Agents.(*AgentFuncs).CreateFunc = nil }, "agents.create must be a function"},
		{"agents.delete", func(p *Provider) { p.Agents.(*AgentFuncs).DeleteFunc = nil }, "agents.delete must be a function"},
		{"calls.update", func(p *Provider) { p.Calls.(*CallFuncs).UpdateFunc = nil }, "calls.update must be a function"},
		{"phoneNumbers.get", func(p *Provider) { p.PhoneNumbers.(*PhoneNumberFuncs).GetFunc = nil }, "phoneNumbers.get must be a function"},
		{"tools without methods", func(p *Provider) { p.Tools = &ToolFuncs{} }, "tools.create must be a function"},
		{"files without methods", func(p *Provider) { p.Files = &FileFuncs{} }, "files.create must be a function"},
		{"knowledgeBase.get", func(p *Provider) {
			p.KnowledgeBase = &KnowledgeBaseFuncs{
				CreateFunc: func(context.Context, CreateKnowledgeBaseParams) (*KnowledgeBase, error) { return nil, nil },
				ListFunc: func(context.Context, *ListKnowledgeBaseParams) (*Page[KnowledgeBase], error) {
					return nil, nil
				},
			}
		}, "knowledgeBase.get must be a function"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := minimalProvider()
			tt.mutate(p)
			_, err := DefineProvider(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			var base *Error
			assert.ErrorAs(t, err, &base)
		})
	}
}

func TestDefineProvider_FailsFastInOrder(t *testing.T) {
	p := minimalProvider()
	p.ProviderID = ""
	p.Agents = nil
	_, err := DefineProvider(p)
	assert.EqualError(t, err, "defineProvider: providerId must be a non-empty string")

	p = minimalProvider()
	p.Calls = nil
	p.Agents.(*AgentFuncs).GetFunc = nil
	_, err = DefineProvider(p)
	assert.EqualError(t, err, "defineProvider: calls manager is required")

	p = minimalProvider()
	var typedNil *PhoneNumberFuncs
	p.PhoneNumbers = typedNil
	_, err = DefineProvider(p)
	assert.EqualError(t, err, "defineProvider: phoneNumbers manager is required")

	_, err = DefineProvider(nil)
	assert.Error(t, err)
}

func TestFuncs_MissingMethodErrors(t *testing.T) {
	var tools ToolFuncs
	_, err := tools.Get(context.Background(), "t1")
	assert.EqualError(t, err, "tools.get is not implemented")
}

func TestProvider_Supports(t *testing.T) {
	p := minimalProvider()
	assert.True(t, p.Supports(CapabilityAgents))
	assert.True(t, p.Supports(CapabilityPhoneNumbers))
	assert.False(t, p.Supports(CapabilityPhoneProvisioning))
	assert.False(t, p.Supports(CapabilityTools))

	p.Tools = &ToolFuncs{}
	assert.True(t, p.Supports(CapabilityTools))

	var nilProvider *Provider
	assert.False(t, nilProvider.Supports(CapabilityAgents))
}
