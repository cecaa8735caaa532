package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProviderEntry registers one vendor account under ID. The API key is
// read from the environment variable named by APIKeyEnv so the file
// itself holds no secrets.
type ProviderEntry struct {
	ID                string  `yaml:"id"`
	Vendor            string  `yaml:"vendor"`
	APIKeyEnv         string  `yaml:"api_key_env"`
	BaseURL           string  `yaml:"base_url"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// APIKey resolves the entry's key from the environment.
func (e ProviderEntry) APIKey() string {
	return os.Getenv(e.APIKeyEnv)
}

type providersFile struct {
	Providers []ProviderEntry `yaml:"providers"`
}

// LoadProviders reads a providers YAML file.
func LoadProviders(path string) ([]ProviderEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers file: %w", err)
	}
	return ParseProviders(data)
}

// ParseProviders decodes and validates a providers document. IDs must be
// unique; ID defaults to the vendor name.
func ParseProviders(data []byte) ([]ProviderEntry, error) {
	var f providersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse providers file: %w", err)
	}

	seen := make(map[string]bool, len(f.Providers))
	for i := range f.Providers {
		e := &f.Providers[i]
		if e.Vendor == "" {
			return nil, fmt.Errorf("providers[%d]: vendor is required", i)
		}
		if e.ID == "" {
			e.ID = e.Vendor
		}
		if e.APIKeyEnv == "" {
			return nil, fmt.Errorf("providers[%d]: api_key_env is required", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("providers[%d]: duplicate id %q", i, e.ID)
		}
		seen[e.ID] = true
	}
	return f.Providers, nil
}

// DefaultProviders returns one entry per vendor whose API key is set in
// the environment.
func DefaultProviders() []ProviderEntry {
	var entries []ProviderEntry
	if RetellAPIKey() != "" {
		entries = append(entries, ProviderEntry{ID: "retell", Vendor: "retell", APIKeyEnv: "RETELL_API_KEY", BaseURL: RetellBaseURL()})
	}
	if VapiAPIKey() != "" {
		entries = append(entries, ProviderEntry{ID: "vapi", Vendor: "vapi", APIKeyEnv: "VAPI_API_KEY", BaseURL: VapiBaseURL()})
	}
	return entries
}
