package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/registry"
)

// Field is the descriptor of a resolved field: either an exported struct
// field reached through an instance receiver, or a pointer to a
// package-level variable registered as a static field.
type Field struct {
	owner  *registry.Type
	name   string
	static bool
	sf     reflect.StructField
	ptr    reflect.Value
}

// FindField searches the type for a field of the given name under the given
// visibility filter. Instance fields are discovered by a linear scan over
// the exported struct fields; static fields come from the registered
// metadata. Fails with ErrFieldNotFound naming the type, the field and the
// filter when nothing matches.
func FindField(t *registry.Type, name string, filter Filter) (*Field, error) {
	if filter == PublicStatic {
		if ptr, ok := t.Var(name); ok {
			return &Field{owner: t, name: name, static: true, ptr: ptr}, nil
		}

		return nil, fmt.Errorf("%w: type '%s' has no %s field '%s'", ErrFieldNotFound, t.Name(), filter, name)
	}

	rtype := t.GoType()
	if rtype.Kind() == reflect.Struct {
		for i := 0; i < rtype.NumField(); i++ {
			if sf := rtype.Field(i); sf.Name == name && sf.IsExported() {
				return &Field{owner: t, name: name, sf: sf}, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: type '%s' has no %s field '%s'", ErrFieldNotFound, t.Name(), filter, name)
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Type returns the field value type.
func (f *Field) Type() reflect.Type {
	if f.static {
		return f.ptr.Type().Elem()
	}

	return f.sf.Type
}

// Get reads the field value. The receiver is ignored for static fields and
// may be the value or a pointer for instance fields. Fields take no index
// arguments.
func (f *Field) Get(recv any, index ...any) (any, error) {
	if len(index) != 0 {
		return nil, fmt.Errorf(
			"%w: found %d but expected 0: read field '%s' of type '%s'",
			ErrIncorrectArgumentCount, len(index), f.name, f.owner.Name(),
		)
	}

	if f.static {
		return f.ptr.Elem().Interface(), nil
	}

	val, err := receiverFor(f.owner, recv, f.owner.GoType())
	if err != nil {
		return nil, err
	}

	return val.FieldByIndex(f.sf.Index).Interface(), nil
}

// Set writes the field value. Instance writes require a pointer receiver so
// the write lands on the caller's object and not on a copy.
func (f *Field) Set(recv any, value any, index ...any) error {
	if len(index) != 0 {
		return fmt.Errorf(
			"%w: found %d but expected 0: write field '%s' of type '%s'",
			ErrIncorrectArgumentCount, len(index), f.name, f.owner.Name(),
		)
	}

	if f.static {
		if err := assign(f.ptr.Elem(), value); err != nil {
			return fmt.Errorf("%w: write static field '%s' of type '%s'", err, f.name, f.owner.Name())
		}

		return nil
	}

	val, err := receiverFor(f.owner, recv, reflect.PointerTo(f.owner.GoType()))
	if err != nil {
		return err
	}

	if err := assign(val.Elem().FieldByIndex(f.sf.Index), value); err != nil {
		return fmt.Errorf("%w: write field '%s' of type '%s'", err, f.name, f.owner.Name())
	}

	return nil
}
