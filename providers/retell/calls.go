package retell

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/voice"
)

const resourceCall = "Call"

type CallManager struct {
	api CallAPI
}

var _ voice.CallManager = (*CallManager)(nil)

func NewCallManager(api CallAPI) *CallManager {
	return &CallManager{api: api}
}

// Create places an outbound phone call.
func (m *CallManager) Create(ctx context.Context, params voice.CreateCallParams) (*voice.Call, error) {
	res, err := m.api.CreatePhoneCall(ctx, createCallRequest(params))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapCall(res), nil
}

// List rejects filters Retell cannot apply (phone number id, sorting by
// anything but start time) before any request is sent.
func (m *CallManager) List(ctx context.Context, params *voice.ListCallsParams) (*voice.Page[voice.Call], error) {
	query, err := listCallsRequest(params)
	if err != nil {
		return nil, err
	}
	res, err := m.api.List(ctx, query)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.Call, 0, len(res))
	for _, c := range res {
		items = append(items, *mapCall(c))
	}
	return voice.SinglePage(items), nil
}

func (m *CallManager) Get(ctx context.Context, id string) (*voice.Call, error) {
	res, err := m.api.Retrieve(ctx, id)
	if err != nil {
		return nil, wrapError(err, resourceCall, id)
	}
	return mapCall(res), nil
}

func (m *CallManager) Update(ctx context.Context, id string, params voice.UpdateCallParams) (*voice.Call, error) {
	res, err := m.api.Update(ctx, id, updateCallRequest(params))
	if err != nil {
		return nil, wrapError(err, resourceCall, id)
	}
	return mapCall(res), nil
}

func (m *CallManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, resourceCall, id)
	}
	return nil
}
