package vapi

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/voice"
)

// AgentManager manages Vapi assistants.
type AgentManager struct {
	api AssistantAPI
}

var _ voice.AgentManager = (*AgentManager)(nil)

func NewAgentManager(api AssistantAPI) *AgentManager {
	return &AgentManager{api: api}
}

func (m *AgentManager) Create(ctx context.Context, params voice.CreateAgentParams) (*voice.Agent, error) {
	res, err := m.api.Create(ctx, createAssistantRequest(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapAssistant(res), nil
}

func (m *AgentManager) List(ctx context.Context, params *voice.ListAgentsParams) (*voice.Page[voice.Agent], error) {
	var limit int
	if params != nil {
		limit = params.Limit
	}
	res, err := m.api.List(ctx, limitQuery(limit))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.Agent, 0, len(res))
	for _, a := range res {
		items = append(items, *mapAssistant(a))
	}
	return voice.SinglePage(items), nil
}

func (m *AgentManager) Get(ctx context.Context, id string) (*voice.Agent, error) {
	res, err := m.api.Get(ctx, id)
	if err != nil {
		return nil, wrapError(err, "Agent", id)
	}
	return mapAssistant(res), nil
}

func (m *AgentManager) Update(ctx context.Context, id string, params voice.UpdateAgentParams) (*voice.Agent, error) {
	res, err := m.api.Update(ctx, id, updateAssistantRequest(params))
	if err != nil {
		return nil, wrapError(err, "Agent", id)
	}
	return mapAssistant(res), nil
}

func (m *AgentManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, "Agent", id)
	}
	return nil
}
