package llmfactory

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Factory creates configured completion-service clients.
type Factory interface {
	// DefaultProvider returns the first configured provider.
	DefaultProvider() (*ProviderConfig, error)
	// DefaultModel returns the model of the first configured provider.
	DefaultModel() (llms.Model, error)
	// ModelByName returns the model of the named provider.
	ModelByName(name string) (llms.Model, error)
}

// Load returns a factory from the config file location.
func Load(location string) (Factory, error) {
	cfg, err := LoadConfig(location)
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

type factory struct {
	cfg *Config

	byName map[string]llms.Model
	lock   sync.Mutex
}

// New creates a new LLM factory
func New(cfg *Config) Factory {
	return &factory{
		cfg:    cfg,
		byName: make(map[string]llms.Model),
	}
}

// NewLLM creates a client for the provider.
func NewLLM(cfg *ProviderConfig) (llms.Model, error) {
	var opts []openai.Option
	if cfg.Token != "" {
		opts = append(opts, openai.WithToken(cfg.Token))
	}

	switch typ := strings.ToUpper(cfg.OpenAI.APIType); typ {
	case "AZURE", "AZURE_AD":
		if typ == "AZURE" {
			opts = append(opts, openai.WithAPIType(openai.APITypeAzure))
		} else {
			opts = append(opts, openai.WithAPIType(openai.APITypeAzureAD))
		}
		opts = append(opts, openai.WithAPIVersion(cfg.OpenAI.APIVersion))
	default:
		opts = append(opts, openai.WithAPIType(openai.APITypeOpenAI))
	}

	opts = append(opts, openai.WithModel(cfg.DefaultModel))

	if cfg.OpenAI.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAI.BaseURL))
	}
	return openai.New(opts...)
}

func (f *factory) DefaultProvider() (*ProviderConfig, error) {
	if len(f.cfg.Providers) == 0 {
		return nil, errors.New("no providers configured")
	}
	return f.cfg.Providers[0], nil
}

func (f *factory) DefaultModel() (llms.Model, error) {
	prov, err := f.DefaultProvider()
	if err != nil {
		return nil, err
	}
	return f.ModelByName(prov.Name)
}

func (f *factory) ModelByName(name string) (llms.Model, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if model, ok := f.byName[name]; ok {
		return model, nil
	}

	for _, prov := range f.cfg.Providers {
		if prov.Name == name {
			model, err := NewLLM(prov)
			if err != nil {
				return nil, errors.WithMessagef(err, "failed to create model for provider %q", name)
			}
			f.byName[name] = model
			return model, nil
		}
	}
	return nil, errors.Newf("provider not found: %s", name)
}
