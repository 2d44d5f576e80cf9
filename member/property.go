package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/registry"
)

// Property is the descriptor of a resolved property: a getter and an
// optional setter. Instance accessors are receiver-first func values, either
// registered explicitly or discovered from the accessor-pair convention
// 'X() T' + 'SetX(T)'. A property whose getter takes parameters beyond the
// receiver is an indexed property.
type Property struct {
	owner  *registry.Type
	name   string
	static bool
	getter reflect.Value
	setter reflect.Value
}

// FindProperty searches the type for a property of the given name under the
// given visibility filter. Registered properties win over the accessor-pair
// convention. Fails with ErrPropertyNotFound naming the type, the property
// and the filter when nothing matches.
func FindProperty(t *registry.Type, name string, filter Filter) (*Property, error) {
	static := filter == PublicStatic
	for _, spec := range t.PropertySpecs() {
		if spec.Name == name && spec.Static == static {
			return &Property{owner: t, name: name, static: static, getter: spec.Getter, setter: spec.Setter}, nil
		}
	}

	if !static {
		if getter, setter, ok := accessorPair(t.GoType(), name); ok {
			return &Property{owner: t, name: name, getter: getter, setter: setter}, nil
		}
	}

	return nil, fmt.Errorf("%w: type '%s' has no %s property '%s'", ErrPropertyNotFound, t.Name(), filter, name)
}

// accessorPair reports whether the pointer method set of 'rtype' exposes the
// conventional getter/setter pair for a property of the given name: a getter
// returning exactly one value and a 'Set'-prefixed setter taking the
// getter's index parameters plus the value and returning nothing.
func accessorPair(rtype reflect.Type, name string) (getter, setter reflect.Value, ok bool) {
	ptype := reflect.PointerTo(rtype)

	get, okGet := ptype.MethodByName(name)
	set, okSet := ptype.MethodByName("Set" + name)
	if !okGet || !okSet {
		return reflect.Value{}, reflect.Value{}, false
	}

	getType := get.Func.Type()
	setType := set.Func.Type()
	if getType.NumOut() != 1 || setType.NumOut() != 0 || setType.NumIn() != getType.NumIn()+1 {
		return reflect.Value{}, reflect.Value{}, false
	}

	for i := 1; i < getType.NumIn(); i++ {
		if setType.In(i) != getType.In(i) {
			return reflect.Value{}, reflect.Value{}, false
		}
	}
	if setType.In(setType.NumIn()-1) != getType.Out(0) {
		return reflect.Value{}, reflect.Value{}, false
	}

	return get.Func, set.Func, true
}

// Name returns the property name.
func (p *Property) Name() string {
	return p.name
}

// Type returns the property value type.
func (p *Property) Type() reflect.Type {
	getType := p.getter.Type()
	return getType.Out(0)
}

// IndexTypes returns the index parameter types of the getter, excluding the
// receiver. A plain property returns an empty list.
func (p *Property) IndexTypes() []reflect.Type {
	getType := p.getter.Type()

	skip := 0
	if !p.static {
		skip = 1
	}

	params := make([]reflect.Type, 0, getType.NumIn()-skip)
	for i := skip; i < getType.NumIn(); i++ {
		params = append(params, getType.In(i))
	}

	return params
}

// CanWrite reports whether the property has a setter.
func (p *Property) CanWrite() bool {
	return p.setter.IsValid()
}

// Get reads the property value through its getter with the given index
// arguments. The receiver is ignored for static properties.
func (p *Property) Get(recv any, index ...any) (any, error) {
	what := fmt.Sprintf("read property '%s' of type '%s'", p.name, p.owner.Name())

	in, err := argValues(p.IndexTypes(), index, what)
	if err != nil {
		return nil, err
	}

	if !p.static {
		val, err := receiverFor(p.owner, recv, p.getter.Type().In(0))
		if err != nil {
			return nil, err
		}
		in = append([]reflect.Value{val}, in...)
	}

	return callFunc(p.getter, in)[0].Interface(), nil
}

// Set writes the property value through its setter with the given index
// arguments. Fails with ErrReadOnlyProperty when no setter exists.
func (p *Property) Set(recv any, value any, index ...any) error {
	if !p.setter.IsValid() {
		return fmt.Errorf("%w: property '%s' of type '%s'", ErrReadOnlyProperty, p.name, p.owner.Name())
	}

	what := fmt.Sprintf("write property '%s' of type '%s'", p.name, p.owner.Name())

	in, err := argValues(p.IndexTypes(), index, what)
	if err != nil {
		return err
	}

	dst := reflect.New(p.Type()).Elem()
	if err := assign(dst, value); err != nil {
		return fmt.Errorf("%w: %s", err, what)
	}
	in = append(in, dst)

	if !p.static {
		val, err := receiverFor(p.owner, recv, p.setter.Type().In(0))
		if err != nil {
			return err
		}
		in = append([]reflect.Value{val}, in...)
	}

	callFunc(p.setter, in)

	return nil
}
