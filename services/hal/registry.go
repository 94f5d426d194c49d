package hal

import (
	"fmt"
	"sync"

	"sonata-hal-go/errcode"
)

// Registry maps device ids to adaptors and dispatches control verbs.
type Registry struct {
	mu       sync.RWMutex
	adaptors map[string]Adaptor
}

func NewRegistry() *Registry {
	return &Registry{adaptors: map[string]Adaptor{}}
}

// Add installs an adaptor. It panics on duplicate ids to catch wiring
// mistakes at start-up.
func (r *Registry) Add(a Adaptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := a.ID()
	if id == "" {
		panic("hal: adaptor with empty id")
	}
	if _, exists := r.adaptors[id]; exists {
		panic(fmt.Sprintf("hal: adaptor already registered for id %q", id))
	}
	r.adaptors[id] = a
}

// Get looks up an adaptor by device id.
func (r *Registry) Get(id string) (Adaptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adaptors[id]
	return a, ok
}

// Control routes a verb to the adaptor owning id.
func (r *Registry) Control(id, kind, method string, payload any) (any, error) {
	a, ok := r.Get(id)
	if !ok {
		return nil, errcode.UnknownDevice
	}
	return a.Control(kind, method, payload)
}

// Capabilities collects every adaptor's capability documents, keyed by
// device id.
func (r *Registry) Capabilities() map[string][]CapInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]CapInfo, len(r.adaptors))
	for id, a := range r.adaptors {
		out[id] = a.Capabilities()
	}
	return out
}
