package vapi

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type ToolManager struct {
	api ToolAPI
}

var _ voice.ToolManager = (*ToolManager)(nil)

func NewToolManager(api ToolAPI) *ToolManager {
	return &ToolManager{api: api}
}

func (m *ToolManager) Create(ctx context.Context, params voice.CreateToolParams) (*voice.Tool, error) {
	res, err := m.api.Create(ctx, createToolRequest(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapTool(res), nil
}

func (m *ToolManager) List(ctx context.Context, params *voice.ListToolsParams) (*voice.Page[voice.Tool], error) {
	var limit int
	if params != nil {
		limit = params.Limit
	}
	res, err := m.api.List(ctx, limitQuery(limit))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.Tool, 0, len(res))
	for _, t := range res {
		items = append(items, *mapTool(t))
	}
	return voice.SinglePage(items), nil
}

func (m *ToolManager) Get(ctx context.Context, id string) (*voice.Tool, error) {
	res, err := m.api.Get(ctx, id)
	if err != nil {
		return nil, wrapError(err, "Tool", id)
	}
	return mapTool(res), nil
}

func (m *ToolManager) Update(ctx context.Context, id string, params voice.UpdateToolParams) (*voice.Tool, error) {
	res, err := m.api.Update(ctx, id, updateToolRequest(params))
	if err != nil {
		return nil, wrapError(err, "Tool", id)
	}
	return mapTool(res), nil
}

func (m *ToolManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, "Tool", id)
	}
	return nil
}
