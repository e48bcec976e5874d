package host

import (
	"fmt"
	"sort"
	"sync"
)

// Registration describes an auth provider to the host. Create is invoked
// lazily, so registration itself performs no provider work.
type Registration struct {
	ID     string
	Order  int
	Create func() AuthProvider
}

var registries = struct {
	mu        sync.RWMutex
	providers map[string]Registration
	brokers   map[string]func() TokenBroker
	admin     map[string]AdminAdapter
}{
	providers: map[string]Registration{},
	brokers:   map[string]func() TokenBroker{},
	admin:     map[string]AdminAdapter{},
}

// RegisterAuthProvider adds a provider registration to the process-wide
// registry. Provider ids must be unique.
func RegisterAuthProvider(r Registration) error {
	const op = "host.RegisterAuthProvider"
	if r.ID == "" {
		return fmt.Errorf("%s: missing provider id: %w", op, ErrInvalidParameter)
	}
	if r.Create == nil {
		return fmt.Errorf("%s: missing create func for %q: %w", op, r.ID, ErrNilParameter)
	}
	registries.mu.Lock()
	defer registries.mu.Unlock()
	if _, ok := registries.providers[r.ID]; ok {
		return fmt.Errorf("%s: auth provider %q: %w", op, r.ID, ErrAlreadyRegistered)
	}
	registries.providers[r.ID] = r
	return nil
}

// AuthProviders returns all registrations sorted by Order, then id.
func AuthProviders() []Registration {
	registries.mu.RLock()
	defer registries.mu.RUnlock()
	all := make([]Registration, 0, len(registries.providers))
	for _, r := range registries.providers {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Order != all[j].Order {
			return all[i].Order < all[j].Order
		}
		return all[i].ID < all[j].ID
	})
	return all
}

// RegisterTokenBroker adds a token broker factory for the given provider id.
func RegisterTokenBroker(id string, factory func() TokenBroker) error {
	const op = "host.RegisterTokenBroker"
	if id == "" {
		return fmt.Errorf("%s: missing provider id: %w", op, ErrInvalidParameter)
	}
	if factory == nil {
		return fmt.Errorf("%s: missing factory for %q: %w", op, id, ErrNilParameter)
	}
	registries.mu.Lock()
	defer registries.mu.Unlock()
	if _, ok := registries.brokers[id]; ok {
		return fmt.Errorf("%s: token broker %q: %w", op, id, ErrAlreadyRegistered)
	}
	registries.brokers[id] = factory
	return nil
}

// LookupTokenBroker returns the broker factory registered for the id.
func LookupTokenBroker(id string) (func() TokenBroker, error) {
	const op = "host.LookupTokenBroker"
	registries.mu.RLock()
	defer registries.mu.RUnlock()
	f, ok := registries.brokers[id]
	if !ok {
		return nil, fmt.Errorf("%s: token broker %q: %w", op, id, ErrNotFound)
	}
	return f, nil
}

// RegisterAdminAdapter adds an admin adapter to the process-wide registry.
func RegisterAdminAdapter(a AdminAdapter) error {
	const op = "host.RegisterAdminAdapter"
	if a == nil {
		return fmt.Errorf("%s: missing adapter: %w", op, ErrNilParameter)
	}
	if a.ID() == "" {
		return fmt.Errorf("%s: missing adapter id: %w", op, ErrInvalidParameter)
	}
	registries.mu.Lock()
	defer registries.mu.Unlock()
	if _, ok := registries.admin[a.ID()]; ok {
		return fmt.Errorf("%s: admin adapter %q: %w", op, a.ID(), ErrAlreadyRegistered)
	}
	registries.admin[a.ID()] = a
	return nil
}

// AdminAdapters returns all registered admin adapters sorted by id.
func AdminAdapters() []AdminAdapter {
	registries.mu.RLock()
	defer registries.mu.RUnlock()
	all := make([]AdminAdapter, 0, len(registries.admin))
	for _, a := range registries.admin {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all
}

// ResetRegistries clears all process-wide registries. Intended for tests.
func ResetRegistries() {
	registries.mu.Lock()
	defer registries.mu.Unlock()
	registries.providers = map[string]Registration{}
	registries.brokers = map[string]func() TokenBroker{}
	registries.admin = map[string]AdminAdapter{}
}
