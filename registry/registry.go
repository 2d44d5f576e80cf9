package registry

import (
	"fmt"
	"strings"
)

// Registry is an ordered list of modules: the search space of a
// whole-process type lookup. It is an explicit snapshot, so the same name
// lookup over two different registries may legitimately differ.
type Registry struct {
	modules []*Module
}

// New creates a registry over the given modules.
func New(modules ...*Module) *Registry {
	return &Registry{modules: modules}
}

// Add appends a module to the registry.
func (r *Registry) Add(m *Module) {
	r.modules = append(r.modules, m)
}

// Modules returns the modules in search order.
func (r *Registry) Modules() []*Module {
	return r.modules
}

// Type searches every module of the registry for a type of the given name.
// It succeeds only if exactly one module defines the name: zero matches fail
// with ErrTypeNotFound, more than one with ErrAmbiguousTypeName naming each
// module that defines the type.
func (r *Registry) Type(name string) (*Type, error) {
	var (
		found   *Type
		defined []string
	)
	for _, m := range r.modules {
		for _, t := range m.types {
			if t.name == name {
				found = t
				defined = append(defined, m.name)
			}
		}
	}

	switch len(defined) {
	case 0:
		return nil, fmt.Errorf("%w: '%s' in %d modules", ErrTypeNotFound, name, len(r.modules))
	case 1:
		return found, nil
	default:
		return nil, fmt.Errorf(
			"%w: '%s' is defined in modules %s",
			ErrAmbiguousTypeName,
			name,
			strings.Join(defined, ", "),
		)
	}
}
