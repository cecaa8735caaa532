package retell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshitk-cp/voicebridge/voice"
)

func TestCallManager_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	api := newFakeCallAPI()
	m := NewCallManager(api)

	call, err := m.Create(ctx, voice.CreateCallParams{AgentID: "a1", ToNumber: "+1", FromNumber: "+2"})
	require.NoError(t, err)
	assert.Equal(t, voice.CallStatusQueued, call.Status)
	assert.Equal(t, map[string]any{"to_number": "+1", "from_number": "+2", "agent_id": "a1"}, api.createBodies[0])

	got, err := m.Get(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, call.ID, got.ID)
	assert.Equal(t, "retell", got.Provider)

	updated, err := m.Update(ctx, call.ID, voice.UpdateCallParams{Metadata: map[string]any{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, updated.Metadata)

	require.NoError(t, m.Delete(ctx, call.ID))
	err = m.Delete(ctx, call.ID)
	assert.True(t, voice.IsNotFound(err))
}

func TestCallManager_ListUnsupportedMakesNoCall(t *testing.T) {
	ctx := context.Background()
	api := newFakeCallAPI()
	m := NewCallManager(api)

	_, err := m.List(ctx, &voice.ListCallsParams{PhoneNumberID: "pn_1"})
	require.Error(t, err)
	assert.Equal(t, "[retell] Unsupported list params: phoneNumberId", err.Error())
	assert.Equal(t, 0, api.listCalls)

	_, err = m.List(ctx, &voice.ListCallsParams{EndTime: "31/12/2026"})
	assert.EqualError(t, err, "[retell] Invalid endTime. Expected ISO timestamp.")
	assert.Equal(t, 0, api.listCalls)
}

func TestCallManager_ListSendsFilters(t *testing.T) {
	ctx := context.Background()
	api := newFakeCallAPI()
	api.store.put(map[string]any{"call_id": "c1", "call_status": "ongoing"})
	m := NewCallManager(api)

	page, err := m.List(ctx, &voice.ListCallsParams{AgentID: "a1", Limit: 5})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, voice.CallStatusInProgress, page.Items[0].Status)
	assert.False(t, page.HasMore)

	require.Equal(t, 1, api.listCalls)
	assert.Equal(t, map[string]any{
		"limit":           5,
		"filter_criteria": map[string]any{"agent_id": []any{"a1"}},
	}, api.listQueries[0])
}

func TestCallManager_ListWrapsClientError(t *testing.T) {
	api := newFakeCallAPI()
	api.err = &codeError{code: 500, message: "internal"}
	m := NewCallManager(api)

	_, err := m.List(context.Background(), nil)
	pe, ok := voice.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "[retell] internal", pe.Error())
	assert.Equal(t, api.err, pe.Cause)
}
