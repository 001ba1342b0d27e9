// ABOUTME: Provider registry for mapping API names to provider factories
// ABOUTME: Thread-safe registration and lookup of Provider implementations

package ai

import (
	"fmt"
	"slices"
	"sync"
)

// ProviderConfig carries the per-provider settings from the config file.
// Empty fields select the provider's defaults.
type ProviderConfig struct {
	Endpoint string
	APIKey   string
}

// ProviderFactory creates a Provider from its configuration.
type ProviderFactory func(cfg ProviderConfig) Provider

var (
	registryMu sync.RWMutex
	registry   = make(map[Api]ProviderFactory)
)

// RegisterProvider registers a factory for the given API.
func RegisterProvider(api Api, factory ProviderFactory) {
	registryMu.Lock()
	registry[api] = factory
	registryMu.Unlock()
}

// GetProvider builds the provider registered for api.
func GetProvider(api Api, cfg ProviderConfig) (Provider, error) {
	registryMu.RLock()
	factory, ok := registry[api]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, api)
	}
	return factory(cfg), nil
}

// Names returns the registered API names in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for api := range registry {
		names = append(names, string(api))
	}
	registryMu.RUnlock()
	slices.Sort(names)
	return names
}
