package retell

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

const resourceKnowledgeBase = "KnowledgeBase"

type KnowledgeBaseManager struct {
	api KnowledgeBaseAPI
}

var _ voice.KnowledgeBaseManager = (*KnowledgeBaseManager)(nil)

func NewKnowledgeBaseManager(api KnowledgeBaseAPI) *KnowledgeBaseManager {
	return &KnowledgeBaseManager{api: api}
}

func (m *KnowledgeBaseManager) Create(ctx context.Context, params voice.CreateKnowledgeBaseParams) (*voice.KnowledgeBase, error) {
	res, err := m.api.Create(ctx, createKnowledgeBaseRequest(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapKnowledgeBase(res), nil
}

func (m *KnowledgeBaseManager) List(ctx context.Context, params *voice.ListKnowledgeBaseParams) (*voice.Page[voice.KnowledgeBase], error) {
	res, err := m.api.List(ctx)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.KnowledgeBase, 0, len(res))
	for _, kb := range res {
		items = append(items, *mapKnowledgeBase(kb))
	}
	if params != nil {
		items = dto.Truncate(items, params.Limit)
	}
	return voice.SinglePage(items), nil
}

func (m *KnowledgeBaseManager) Get(ctx context.Context, id string) (*voice.KnowledgeBase, error) {
	res, err := m.api.Retrieve(ctx, id)
	if err != nil {
		return nil, wrapError(err, resourceKnowledgeBase, id)
	}
	return mapKnowledgeBase(res), nil
}

func (m *KnowledgeBaseManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, resourceKnowledgeBase, id)
	}
	return nil
}
