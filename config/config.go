// Package config holds the application configuration: completion-service
// providers, agent limits and tool credentials. It is constructed once at
// startup and passed by reference; there is no ambient global state.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/wayfarer/llmfactory"
	"github.com/effective-security/x/configloader"
	"github.com/go-playground/validator/v10"
)

// Configuration is the root of the YAML config file.
type Configuration struct {
	// LLM lists the completion-service providers; the first one is the default.
	LLM llmfactory.Config `json:"llm" yaml:"llm"`

	Agent AgentConfig `json:"agent,omitempty" yaml:"agent,omitempty"`

	Tavily TavilyConfig `json:"tavily,omitempty" yaml:"tavily,omitempty"`
}

// AgentConfig bounds the agent loop.
type AgentConfig struct {
	// MaxTurns limits model calls per run; 0 keeps the built-in default.
	MaxTurns int `json:"max_turns,omitempty" yaml:"max_turns,omitempty" validate:"omitempty,gte=1"`
}

// TavilyConfig carries the search-service credential.
// Use `${TAVILY_API_KEY}` in the YAML to resolve it from the environment.
type TavilyConfig struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// Load reads, expands and validates the configuration file.
func Load(file string) (*Configuration, error) {
	cfg := new(Configuration)

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load config: %s", file)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid config: %s", file)
	}
	return cfg, nil
}
