// Package registry is the catalog of the ten built-in components and their
// prop schemas.
package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/reoring/surface"
)

// AccessibleProp is the optional accessibility record every component
// accepts. Its fields are checked by a11y.ValidateProp.
const AccessibleProp = "accessible"

// Registry maps component names to schemas. It is read-only after New.
type Registry struct {
	defs  map[string]ComponentDef
	names []string // sorted
}

// New returns a registry holding exactly the ten built-in components.
func New() *Registry {
	r := &Registry{defs: make(map[string]ComponentDef)}
	for _, d := range builtins() {
		r.defs[d.Name] = d
		r.names = append(r.names, d.Name)
	}
	slices.Sort(r.names)
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns a shared registry built on first use.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New() })
	return defaultReg
}

// Get returns the schema for name.
func (r *Registry) Get(name string) (ComponentDef, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Lookup is Get with an error wrapping surface.ErrUnknownComponent.
func (r *Registry) Lookup(name string) (ComponentDef, error) {
	d, ok := r.defs[name]
	if !ok {
		return ComponentDef{}, fmt.Errorf("%w: %q", surface.ErrUnknownComponent, name)
	}
	return d, nil
}

// IsValid reports whether name is a registered component.
func (r *Registry) IsValid(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// ComponentNames returns every registered name in sorted order.
func (r *Registry) ComponentNames() []string { return slices.Clone(r.names) }

// Len returns the number of registered components.
func (r *Registry) Len() int { return len(r.names) }

// All iterates schemas in name order.
func (r *Registry) All() iter.Seq2[string, ComponentDef] {
	return func(yield func(string, ComponentDef) bool) {
		for _, n := range r.names {
			if !yield(n, r.defs[n]) {
				return
			}
		}
	}
}

// InCategory returns the names of the components in c, sorted.
func (r *Registry) InCategory(c Category) []string {
	var out []string
	for n, d := range r.All() {
		if d.Category == c {
			out = append(out, n)
		}
	}
	return out
}
