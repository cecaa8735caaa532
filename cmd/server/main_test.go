package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Harshitk-cp/voicebridge/internal/config"
)

func TestBuildRegistry(t *testing.T) {
	t.Setenv("RETELL_A", "key-a")
	t.Setenv("RETELL_B", "key-b")
	t.Setenv("VAPI_KEY", "key-v")

	registry, err := buildRegistry([]config.ProviderEntry{
		{ID: "retell-a", Vendor: "retell", APIKeyEnv: "RETELL_A"},
		{ID: "retell-b", Vendor: "retell", APIKeyEnv: "RETELL_B"},
		{ID: "vapi", Vendor: "vapi", APIKeyEnv: "VAPI_KEY", RequestsPerSecond: 5, Burst: 2},
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"retell-a", "retell-b", "vapi"}, registry.IDs())

	p, err := registry.Provider("retell-b")
	require.NoError(t, err)
	assert.Equal(t, "retell", p.ProviderID)
}

func TestBuildRegistry_MissingKey(t *testing.T) {
	_, err := buildRegistry([]config.ProviderEntry{
		{ID: "vapi", Vendor: "vapi", APIKeyEnv: "VOICEBRIDGE_TEST_UNSET_KEY"},
	}, zap.NewNop())
	assert.EqualError(t, err, "provider vapi: VAPI_API_KEY is required for Vapi provider")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestBuildRegistry_KeepsFileOrder(t *testing.T) {
	t.Setenv("VAPI_KEY", "key-v")
	t.Setenv("RETELL_KEY", "key-r")

	registry, err := buildRegistry([]config.ProviderEntry{
		{ID: "vapi", Vendor: "vapi", APIKeyEnv: "VAPI_KEY"},
		{ID: "retell", Vendor: "retell", APIKeyEnv: "RETELL_KEY"},
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"vapi", "retell"}, registry.IDs())
}

func TestBuildRegistry_VendorLogsCarryOneProviderField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"agent_id":"a1"}`))
	}))
	defer srv.Close()
	t.Setenv("RETELL_KEY", "key-r")

	core, logs := observer.New(zapcore.DebugLevel)
	registry, err := buildRegistry([]config.ProviderEntry{
		{ID: "retell-eu", Vendor: "retell", APIKeyEnv: "RETELL_KEY", BaseURL: srv.URL},
	}, zap.New(core))
	require.NoError(t, err)

	p, err := registry.Provider("retell-eu")
	require.NoError(t, err)
	_, err = p.Agents.Get(context.Background(), "a1")
	require.NoError(t, err)

	entries := logs.FilterMessage("vendor request").All()
	require.Len(t, entries, 1)
	var providerFields int
	for _, f := range entries[0].Context {
		if f.Key == "provider" {
			providerFields++
			assert.Equal(t, "retell", f.String)
		}
	}
	assert.Equal(t, 1, providerFields)
	assert.Equal(t, "retell-eu", entries[0].ContextMap()["registry_id"])
}
