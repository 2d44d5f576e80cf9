package registry

import "fmt"

// Module is a named collection of registered types. It stands in for one
// compiled module of the host program; a type name is unique within a module
// but may repeat across modules.
type Module struct {
	name  string
	types []*Type
}

// NewModule creates an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{name: name}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Register adds the type of 'v' to the module and returns its descriptor.
// The type is registered under its Go type name; pointers are dereferenced
// first, so Register(&Crate{}) and Register(Crate{}) name the same type.
//
// Returns ErrInvalidRegistration for nil or unnamed types and
// ErrAlreadyDefined when the module already holds a type of that name.
func (m *Module) Register(v any) (*Type, error) {
	rtype, err := namedTypeOf(v)
	if err != nil {
		return nil, err
	}

	for _, t := range m.types {
		if t.name == rtype.Name() {
			return nil, fmt.Errorf("%w: type '%s' in module '%s'", ErrAlreadyDefined, t.name, m.name)
		}
	}

	t := newType(m, rtype)
	m.types = append(m.types, t)

	return t, nil
}

// Type searches the module for a type of the given name. Since the search
// space is a single module, no ambiguity check is needed: the lookup either
// finds the one registered type or fails with ErrTypeNotFound.
func (m *Module) Type(name string) (*Type, error) {
	for _, t := range m.types {
		if t.name == name {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: '%s' in module '%s'", ErrTypeNotFound, name, m.name)
}

// Types returns the registered types in registration order.
func (m *Module) Types() []*Type {
	return m.types
}
