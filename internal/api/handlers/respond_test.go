package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harshitk-cp/voicebridge/voice"
)

func TestStatusFor(t *testing.T) {
	upstream := errors.New("boom")
	unimplemented := (&voice.AgentFuncs{}).Delete(context.Background(), "a1")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", voice.NewNotFoundError("vapi", "Agent", "a1"), http.StatusNotFound},
		{"authentication", voice.NewAuthenticationError("retell"), http.StatusBadGateway},
		{"rejected locally", voice.NewProviderError("retell", "Invalid areaCode: expected numeric string", nil), http.StatusBadRequest},
		{"vendor failure", voice.NewProviderError("vapi", "boom", upstream), http.StatusBadGateway},
		{"not implemented", unimplemented, http.StatusNotImplemented},
		{"plain error", upstream, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
