package registry

import "errors"

// Error types.
var (
	// ErrTypeNotFound is returned when a type name matches nothing in the
	// searched module or registry.
	ErrTypeNotFound = errors.New("type not found")

	// ErrAmbiguousTypeName is returned when a registry-wide search matches
	// a type name in more than one module.
	ErrAmbiguousTypeName = errors.New("ambiguous type name")

	// ErrAmbiguousOverload is reported when the registered metadata defines
	// several methods under one name and a lookup by name alone cannot pick
	// between them.
	ErrAmbiguousOverload = errors.New("ambiguous method overload")

	// ErrAlreadyDefined is returned when a registration collides with an
	// existing one of the same name (and, for overloads, signature).
	ErrAlreadyDefined = errors.New("already defined")

	// ErrInvalidRegistration is returned when a registration argument does
	// not have the required shape, for example a non-pointer static field
	// or a method whose first parameter is not the receiver type.
	ErrInvalidRegistration = errors.New("invalid registration")
)
