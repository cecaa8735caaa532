// Package vapi adapts the Vapi assistant platform to the unified voice
// interface. Assistants are exposed as agents.
package vapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

const ProviderID = "vapi"

type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
	// RequestsPerSecond > 0 throttles calls to the Vapi API.
	RequestsPerSecond float64
	Burst             int
}

// New returns a Vapi provider backed by the REST API.
func New(cfg Config) *voice.Provider {
	return NewProvider(NewClient(cfg))
}

// NewProvider wires every Vapi manager around c. Vapi has no knowledge
// base API, so that manager stays nil.
func NewProvider(c *Client) *voice.Provider {
	return &voice.Provider{
		ProviderID:   ProviderID,
		Agents:       NewAgentManager(c.Assistants),
		Calls:        NewCallManager(c.Calls),
		PhoneNumbers: NewPhoneNumberManager(c.PhoneNumbers),
		Tools:        NewToolManager(c.Tools),
		Files:        NewFileManager(c.Files),
	}
}
