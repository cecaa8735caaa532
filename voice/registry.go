package voice

import (
	"sort"
	"strings"
)

// Registry looks providers up by id. It is built once and never mutated.
type Registry struct {
	providers map[string]*Provider
	ids       []string
}

// NewRegistry builds a registry keyed by the map's ids. The key need
// not match Provider.ProviderID, so one vendor can be registered twice
// with different credentials. Map iteration has no order, so ids are
// sorted; use NewOrderedRegistry to keep a caller-chosen order.
func NewRegistry(providers map[string]*Provider) *Registry {
	entries := make([]RegistryEntry, 0, len(providers))
	for id, p := range providers {
		entries = append(entries, RegistryEntry{ID: id, Provider: p})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return NewOrderedRegistry(entries...)
}

// RegistryEntry registers Provider under ID.
type RegistryEntry struct {
	ID       string
	Provider *Provider
}

// NewOrderedRegistry builds a registry whose ids keep the order of
// entries. A repeated id replaces the earlier provider but keeps its
// original position.
func NewOrderedRegistry(entries ...RegistryEntry) *Registry {
	r := &Registry{
		providers: make(map[string]*Provider, len(entries)),
		ids:       make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, seen := r.providers[e.ID]; !seen {
			r.ids = append(r.ids, e.ID)
		}
		r.providers[e.ID] = e.Provider
	}
	return r
}

// Provider returns the provider registered under id.
func (r *Registry) Provider(id string) (*Provider, error) {
	p, ok := r.providers[id]
	if !ok || p == nil {
		return nil, newError("Provider %q not found. Available: %s", id, strings.Join(r.ids, ", "))
	}
	return p, nil
}

// IDs returns the registered ids.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
