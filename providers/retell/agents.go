package retell

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

const resourceAgent = "Agent"

type AgentManager struct {
	api AgentAPI
}

var _ voice.AgentManager = (*AgentManager)(nil)

func NewAgentManager(api AgentAPI) *AgentManager {
	return &AgentManager{api: api}
}

func (m *AgentManager) Create(ctx context.Context, params voice.CreateAgentParams) (*voice.Agent, error) {
	res, err := m.api.Create(ctx, createAgentRequest(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapAgent(res), nil
}

// List returns every agent; Retell has no server-side limit so Limit is
// applied after the fetch.
func (m *AgentManager) List(ctx context.Context, params *voice.ListAgentsParams) (*voice.Page[voice.Agent], error) {
	res, err := m.api.List(ctx)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.Agent, 0, len(res))
	for _, a := range res {
		items = append(items, *mapAgent(a))
	}
	if params != nil {
		items = dto.Truncate(items, params.Limit)
	}
	return voice.SinglePage(items), nil
}

func (m *AgentManager) Get(ctx context.Context, id string) (*voice.Agent, error) {
	res, err := m.api.Retrieve(ctx, id)
	if err != nil {
		return nil, wrapError(err, resourceAgent, id)
	}
	return mapAgent(res), nil
}

func (m *AgentManager) Update(ctx context.Context, id string, params voice.UpdateAgentParams) (*voice.Agent, error) {
	res, err := m.api.Update(ctx, id, updateAgentRequest(params))
	if err != nil {
		return nil, wrapError(err, resourceAgent, id)
	}
	return mapAgent(res), nil
}

func (m *AgentManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, resourceAgent, id)
	}
	return nil
}
