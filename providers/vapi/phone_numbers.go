package vapi

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/voice"
)

// PhoneNumberManager is read-only; numbers are provisioned in the Vapi
// dashboard.
type PhoneNumberManager struct {
	api PhoneNumberAPI
}

var _ voice.PhoneNumberManager = (*PhoneNumberManager)(nil)

func NewPhoneNumberManager(api PhoneNumberAPI) *PhoneNumberManager {
	return &PhoneNumberManager{api: api}
}

func (m *PhoneNumberManager) List(ctx context.Context, params *voice.ListPhoneNumbersParams) (*voice.Page[voice.PhoneNumber], error) {
	var limit int
	if params != nil {
		limit = params.Limit
	}
	res, err := m.api.List(ctx, limitQuery(limit))
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.PhoneNumber, 0, len(res))
	for _, pn := range res {
		items = append(items, *mapPhoneNumber(pn))
	}
	return voice.SinglePage(items), nil
}

func (m *PhoneNumberManager) Get(ctx context.Context, id string) (*voice.PhoneNumber, error) {
	res, err := m.api.Get(ctx, id)
	if err != nil {
		return nil, wrapError(err, "PhoneNumber", id)
	}
	return mapPhoneNumber(res), nil
}
