package retell

import (
	"context"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

const resourcePhoneNumber = "PhoneNumber"

// PhoneNumberManager also provisions numbers. Retell identifies a
// number by the E.164 string itself.
type PhoneNumberManager struct {
	api PhoneNumberAPI
}

var (
	_ voice.PhoneNumberManager     = (*PhoneNumberManager)(nil)
	_ voice.PhoneNumberProvisioner = (*PhoneNumberManager)(nil)
)

func NewPhoneNumberManager(api PhoneNumberAPI) *PhoneNumberManager {
	return &PhoneNumberManager{api: api}
}

func (m *PhoneNumberManager) List(ctx context.Context, params *voice.ListPhoneNumbersParams) (*voice.Page[voice.PhoneNumber], error) {
	res, err := m.api.List(ctx)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	items := make([]voice.PhoneNumber, 0, len(res))
	for _, pn := range res {
		items = append(items, *mapPhoneNumber(pn))
	}
	if params != nil {
		items = dto.Truncate(items, params.Limit)
	}
	return voice.SinglePage(items), nil
}

func (m *PhoneNumberManager) Get(ctx context.Context, id string) (*voice.PhoneNumber, error) {
	res, err := m.api.Retrieve(ctx, id)
	if err != nil {
		return nil, wrapError(err, resourcePhoneNumber, id)
	}
	return mapPhoneNumber(res), nil
}

// Create buys a number. A non-numeric AreaCode fails before the request.
func (m *PhoneNumberManager) Create(ctx context.Context, params voice.CreatePhoneNumberParams) (*voice.PhoneNumber, error) {
	body, err := createPhoneNumberRequest(params)
	if err != nil {
		return nil, err
	}
	res, err := m.api.Create(ctx, body)
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	return mapPhoneNumber(res), nil
}

func (m *PhoneNumberManager) Update(ctx context.Context, id string, params voice.UpdatePhoneNumberParams) (*voice.PhoneNumber, error) {
	res, err := m.api.Update(ctx, id, updatePhoneNumberRequest(params))
	if err != nil {
		return nil, wrapError(err, resourcePhoneNumber, id)
	}
	return mapPhoneNumber(res), nil
}

func (m *PhoneNumberManager) Delete(ctx context.Context, id string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return wrapError(err, resourcePhoneNumber, id)
	}
	return nil
}
