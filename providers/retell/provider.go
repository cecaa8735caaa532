// Package retell adapts the Retell phone-agent API to the unified
// voice interface.
package retell

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

const ProviderID = "retell"

type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
	// RequestsPerSecond > 0 throttles calls to the Retell API.
	RequestsPerSecond float64
	Burst             int
}

// New returns a Retell provider backed by the REST API.
func New(cfg Config) *voice.Provider {
	return NewProvider(NewClient(cfg))
}

// NewProvider wires every Retell manager around c. Retell has no tool
// or file API, so those managers stay nil.
func NewProvider(c *Client) *voice.Provider {
	return &voice.Provider{
		ProviderID:    ProviderID,
		Agents:        NewAgentManager(c.Agent),
		Calls:         NewCallManager(c.Call),
		PhoneNumbers:  NewPhoneNumberManager(c.PhoneNumber),
		KnowledgeBase: NewKnowledgeBaseManager(c.KnowledgeBase),
	}
}
