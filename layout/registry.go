package layout

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

var (
	ErrInvalidComponent   = errors.New("layout: component id is required")
	ErrDuplicateComponent = errors.New("layout: component already registered")
)

// Registry maps section ids to renderable components. It is an explicit
// object constructed at application start and passed to whatever assembles a
// page; nothing registers itself at import time. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]interfaces.SectionComponent
}

// NewRegistry constructs an empty section registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]interfaces.SectionComponent),
	}
}

// Register stores a component under its id. Registering the same id twice is
// an error so wiring mistakes surface at startup rather than as silently
// shadowed sections.
func (r *Registry) Register(component interfaces.SectionComponent) error {
	if component == nil {
		return ErrInvalidComponent
	}
	id := strings.TrimSpace(component.ID())
	if id == "" {
		return ErrInvalidComponent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[id]; exists {
		return ErrDuplicateComponent
	}
	r.components[id] = component
	return nil
}

// Get returns the component registered under id.
func (r *Registry) Get(id string) (interfaces.SectionComponent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	component, ok := r.components[strings.TrimSpace(id)]
	return component, ok
}

// Has reports whether a component is registered under id.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns the registered section ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.components))
	for id := range r.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
