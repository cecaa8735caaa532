// Package providers builds a voice.Provider for a vendor chosen by name.
package providers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/providers/retell"
	"github.com/Harshitk-cp/voicebridge/providers/vapi"
	"github.com/Harshitk-cp/voicebridge/voice"
)

// Vendor names accepted by New.
const (
	VendorRetell = retell.ProviderID
	VendorVapi   = vapi.ProviderID
)

// Config is shared by every vendor. Fields mirror the vendor packages'
// own Config types.
type Config struct {
	APIKey            string
	BaseURL           string
	HTTPClient        *http.Client
	Logger            *zap.Logger
	RequestsPerSecond float64
	Burst             int
}

// New creates a provider for vendor.
// Returns an error if the vendor is unknown or the API key is empty.
func New(vendor string, cfg Config) (*voice.Provider, error) {
	switch vendor {
	case VendorRetell:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("RETELL_API_KEY is required for Retell provider")
		}
		return retell.New(retell.Config(cfg)), nil

	case VendorVapi:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("VAPI_API_KEY is required for Vapi provider")
		}
		return vapi.New(vapi.Config(cfg)), nil

	default:
		return nil, fmt.Errorf("unknown voice provider: %s (valid options: retell, vapi)", vendor)
	}
}

// Vendors lists the names New accepts.
func Vendors() []string {
	return []string{VendorRetell, VendorVapi}
}
