package provider

import (
	"fmt"
	"sync"

	"github.com/grachmannico95/accounting-sync/internal/domain"
)

type Registry struct {
	factories map[domain.ProviderID]Factory
	mu        sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[domain.ProviderID]Factory),
	}
}

func (r *Registry) Register(id domain.ProviderID, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[id] = factory
}

func (r *Registry) New(id domain.ProviderID, cfg InitConfig) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, id)
	}

	return factory(cfg)
}

func (r *Registry) Has(id domain.ProviderID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}
