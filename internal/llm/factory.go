package llm

import (
	"fmt"

	"doctriage/internal/config"
	"doctriage/internal/port"
)

// ProviderFactory is a function that creates an LLMProvider from a provider
// config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.LLMProvider, error)

// registry of provider factories, populated explicitly via RegisterProvider
// during startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider creates an LLMProvider from a provider config using the
// registered factory.
func NewProvider(cfg *config.LLMProviderConfig) (port.LLMProvider, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
