package llmfactory

import (
	"github.com/effective-security/x/configloader"
)

// Config describes the configured completion-service providers.
type Config struct {
	Providers []*ProviderConfig `json:"providers" yaml:"providers"`
}

// ProviderConfig for an OpenAI-compatible provider
type ProviderConfig struct {
	Name         string       `json:"name" yaml:"name"`
	Token        string       `json:"token,omitempty" yaml:"token,omitempty"`
	DefaultModel string       `json:"default_model,omitempty" yaml:"default_model,omitempty"`
	OpenAI       OpenAIConfig `json:"open_ai" yaml:"open_ai"`
}

// OpenAIConfig specifies options config
type OpenAIConfig struct {
	// BaseURL points the client at any OpenAI-compatible endpoint.
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	// APIType specifies the type of API to use:
	// OPEN_AI|AZURE|AZURE_AD
	APIType string `json:"api_type,omitempty" yaml:"api_type,omitempty"`
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
