package member

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/logger"
	"github.com/anoideaopen/accessor/registry"
)

// Accessor is the read/write surface shared by fields and properties. Index
// arguments apply to indexed properties only; fields and plain properties
// reject them.
type Accessor interface {
	Name() string
	Type() reflect.Type
	Get(recv any, index ...any) (any, error)
	Set(recv any, value any, index ...any) error
}

// FindFieldOrProperty tries the field lookup first and the property lookup
// second. It fails with ErrMemberNotFound, citing both attempted
// categories, only when both lookups fail.
func FindFieldOrProperty(t *registry.Type, name string, filter Filter) (Accessor, error) {
	if f, err := FindField(t, name, filter); err == nil {
		return f, nil
	} else if !errors.Is(err, ErrFieldNotFound) {
		return nil, err
	}

	if p, err := FindProperty(t, name, filter); err == nil {
		return p, nil
	} else if !errors.Is(err, ErrPropertyNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf(
		"%w: type '%s' has no %s field or property '%s'",
		ErrMemberNotFound, t.Name(), filter, name,
	)
}

// GetStatic reads a static field-or-property of the type.
func GetStatic(t *registry.Type, name string) (any, error) {
	a, err := FindFieldOrProperty(t, name, PublicStatic)
	if err != nil {
		return nil, err
	}

	return a.Get(nil)
}

// SetStatic writes a static field-or-property of the type.
func SetStatic(t *registry.Type, name string, value any) error {
	a, err := FindFieldOrProperty(t, name, PublicStatic)
	if err != nil {
		return err
	}

	logger.Logger().Debugf("set static %s.%s", t.Name(), name)

	return a.Set(nil, value)
}

// GetValue reads an instance field-or-property on the given receiver.
func GetValue(t *registry.Type, recv any, name string) (any, error) {
	a, err := FindFieldOrProperty(t, name, PublicInstance)
	if err != nil {
		return nil, err
	}

	return a.Get(recv)
}

// SetValue writes an instance field-or-property on the given receiver.
// Field writes require a pointer receiver.
func SetValue(t *registry.Type, recv any, name string, value any) error {
	a, err := FindFieldOrProperty(t, name, PublicInstance)
	if err != nil {
		return err
	}

	logger.Logger().Debugf("set %s.%s", t.Name(), name)

	return a.Set(recv, value)
}

// GetIndex reads through the type's indexer with the given index arguments:
// on the given receiver, or on the static indexer when the receiver is nil.
func GetIndex(t *registry.Type, recv any, index ...any) (any, error) {
	p, err := FindIndexer(t, filterFor(recv))
	if err != nil {
		return nil, err
	}

	return p.Get(recv, index...)
}

// SetIndex writes through the type's indexer with the given index arguments.
func SetIndex(t *registry.Type, recv any, value any, index ...any) error {
	p, err := FindIndexer(t, filterFor(recv))
	if err != nil {
		return err
	}

	logger.Logger().Debugf("set %s indexer '%s' with %d index arguments", t.Name(), p.Name(), len(index))

	return p.Set(recv, value, index...)
}
