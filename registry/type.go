package registry

import (
	"fmt"
	"reflect"
)

// Type is the descriptor of one registered type: its reflect.Type plus the
// member metadata Go reflection cannot express. Registration happens at
// setup time; once a type is fully registered its descriptor is read-only
// and safe for concurrent lookups.
type Type struct {
	module *Module
	name   string
	rtype  reflect.Type

	vars    map[string]reflect.Value
	funcs   map[string][]reflect.Value
	methods map[string][]reflect.Value
	props   []PropertySpec
}

// PropertySpec is one registered property: a getter func value, an optional
// setter func value and a static flag. Instance accessors take the receiver
// as their first parameter; a getter with parameters beyond the receiver is
// an indexed property.
type PropertySpec struct {
	Name   string
	Static bool
	Getter reflect.Value
	Setter reflect.Value
}

// TypeOf returns a descriptor for the type of 'v' that is not attached to
// any module. It is a convenience for instance-only use where no
// type-by-name search is needed. Nil and unnamed values fail with
// ErrInvalidRegistration, as in Module.Register.
func TypeOf(v any) (*Type, error) {
	rtype, err := namedTypeOf(v)
	if err != nil {
		return nil, err
	}

	return newType(nil, rtype), nil
}

// namedTypeOf derives the named, non-pointer reflect.Type of 'v'.
func namedTypeOf(v any) (reflect.Type, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidRegistration)
	}

	rtype := reflect.TypeOf(v)
	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype.Name() == "" {
		return nil, fmt.Errorf("%w: unnamed type '%s'", ErrInvalidRegistration, rtype.String())
	}

	return rtype, nil
}

func newType(m *Module, rtype reflect.Type) *Type {
	return &Type{
		module:  m,
		name:    rtype.Name(),
		rtype:   rtype,
		vars:    make(map[string]reflect.Value),
		funcs:   make(map[string][]reflect.Value),
		methods: make(map[string][]reflect.Value),
	}
}

// Name returns the type name.
func (t *Type) Name() string {
	return t.name
}

// Module returns the owning module, or nil for descriptors built with TypeOf.
func (t *Type) Module() *Module {
	return t.module
}

// GoType returns the underlying reflect.Type (never a pointer type).
func (t *Type) GoType() reflect.Type {
	return t.rtype
}

// RegisterVar binds a pointer to a package-level variable as a static field
// of the type. The pointer must be non-nil; the field name must not collide
// with an existing static field.
func (t *Type) RegisterVar(name string, ptr any) error {
	if name == "" {
		return fmt.Errorf("%w: empty static field name on type '%s'", ErrInvalidRegistration, t.name)
	}

	val := reflect.ValueOf(ptr)
	if !val.IsValid() || val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("%w: static field '%s' of type '%s' requires a non-nil pointer", ErrInvalidRegistration, name, t.name)
	}

	if _, ok := t.vars[name]; ok {
		return fmt.Errorf("%w: static field '%s' on type '%s'", ErrAlreadyDefined, name, t.name)
	}

	t.vars[name] = val

	return nil
}

// RegisterFunc binds a func value as a static method of the type. Several
// funcs may share one name to form an overload set; two overloads with the
// same parameter types collide.
func (t *Type) RegisterFunc(name string, fn any) error {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return fmt.Errorf("%w: static method '%s' of type '%s' requires a func value", ErrInvalidRegistration, name, t.name)
	}

	for _, existing := range t.funcs[name] {
		if sameParams(paramTypes(existing.Type(), 0), paramTypes(fnVal.Type(), 0)) {
			return fmt.Errorf("%w: static method '%s' on type '%s'", ErrAlreadyDefined, name, t.name)
		}
	}

	t.funcs[name] = append(t.funcs[name], fnVal)

	return nil
}

// RegisterMethod binds a receiver-first func value as an additional instance
// method overload. The first parameter must be the registered type or a
// pointer to it; parameter types after the receiver distinguish overloads.
func (t *Type) RegisterMethod(name string, fn any) error {
	fnVal := reflect.ValueOf(fn)
	if err := t.checkReceiverFunc(name, fnVal); err != nil {
		return err
	}

	for _, existing := range t.methods[name] {
		if sameParams(paramTypes(existing.Type(), 1), paramTypes(fnVal.Type(), 1)) {
			return fmt.Errorf("%w: method '%s' on type '%s'", ErrAlreadyDefined, name, t.name)
		}
	}

	t.methods[name] = append(t.methods[name], fnVal)

	return nil
}

// RegisterProperty binds a getter/setter pair of receiver-first func values
// as an instance property. The getter must return exactly one value; its
// parameters beyond the receiver are the index parameters of an indexed
// property. The setter may be nil for a read-only property, otherwise it
// must take the getter's index parameters followed by the property value and
// return nothing.
func (t *Type) RegisterProperty(name string, getter, setter any) error {
	getVal := reflect.ValueOf(getter)
	if err := t.checkReceiverFunc(name, getVal); err != nil {
		return err
	}
	if getVal.Type().NumOut() != 1 {
		return fmt.Errorf("%w: getter of property '%s' on type '%s' must return one value", ErrInvalidRegistration, name, t.name)
	}

	spec := PropertySpec{Name: name, Getter: getVal}

	if setter != nil {
		setVal := reflect.ValueOf(setter)
		if err := t.checkReceiverFunc(name, setVal); err != nil {
			return err
		}
		if err := t.checkSetter(name, getVal.Type(), setVal.Type(), 1); err != nil {
			return err
		}
		spec.Setter = setVal
	}

	return t.addProperty(spec)
}

// RegisterStaticProperty binds a getter/setter pair of plain func values as
// a static property. The shape rules match RegisterProperty minus the
// receiver parameter.
func (t *Type) RegisterStaticProperty(name string, getter, setter any) error {
	getVal := reflect.ValueOf(getter)
	if !getVal.IsValid() || getVal.Kind() != reflect.Func {
		return fmt.Errorf("%w: property '%s' of type '%s' requires a func value", ErrInvalidRegistration, name, t.name)
	}
	if getVal.Type().NumOut() != 1 {
		return fmt.Errorf("%w: getter of property '%s' on type '%s' must return one value", ErrInvalidRegistration, name, t.name)
	}

	spec := PropertySpec{Name: name, Static: true, Getter: getVal}

	if setter != nil {
		setVal := reflect.ValueOf(setter)
		if !setVal.IsValid() || setVal.Kind() != reflect.Func {
			return fmt.Errorf("%w: property '%s' of type '%s' requires a func value", ErrInvalidRegistration, name, t.name)
		}
		if err := t.checkSetter(name, getVal.Type(), setVal.Type(), 0); err != nil {
			return err
		}
		spec.Setter = setVal
	}

	return t.addProperty(spec)
}

// Var returns the pointer value registered as the named static field.
func (t *Type) Var(name string) (reflect.Value, bool) {
	val, ok := t.vars[name]
	return val, ok
}

// Funcs returns the overload set registered as the named static method.
func (t *Type) Funcs(name string) []reflect.Value {
	return t.funcs[name]
}

// MethodOverloads returns the receiver-first func values registered as
// additional overloads of the named instance method.
func (t *Type) MethodOverloads(name string) []reflect.Value {
	return t.methods[name]
}

// MethodNames returns the names of all registered static methods when
// 'static' is true, otherwise of all registered instance method overloads.
func (t *Type) MethodNames(static bool) []string {
	source := t.methods
	if static {
		source = t.funcs
	}

	names := make([]string, 0, len(source))
	for name := range source {
		names = append(names, name)
	}

	return names
}

// PropertySpecs returns the registered properties in registration order.
func (t *Type) PropertySpecs() []PropertySpec {
	return t.props
}

func (t *Type) addProperty(spec PropertySpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: empty property name on type '%s'", ErrInvalidRegistration, t.name)
	}

	for _, p := range t.props {
		if p.Name == spec.Name && p.Static == spec.Static {
			return fmt.Errorf("%w: property '%s' on type '%s'", ErrAlreadyDefined, spec.Name, t.name)
		}
	}

	t.props = append(t.props, spec)

	return nil
}

func (t *Type) checkReceiverFunc(name string, fnVal reflect.Value) error {
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return fmt.Errorf("%w: member '%s' of type '%s' requires a func value", ErrInvalidRegistration, name, t.name)
	}

	fnType := fnVal.Type()
	if fnType.NumIn() == 0 || (fnType.In(0) != t.rtype && fnType.In(0) != reflect.PointerTo(t.rtype)) {
		return fmt.Errorf(
			"%w: member '%s' of type '%s' requires '%s' or '*%s' as the first parameter",
			ErrInvalidRegistration, name, t.name, t.name, t.name,
		)
	}

	return nil
}

// checkSetter verifies that a setter's parameter list is the getter's index
// parameters followed by the property value type. 'skip' is the number of
// leading receiver parameters on both accessors.
func (t *Type) checkSetter(name string, getter, setter reflect.Type, skip int) error {
	want := append(paramTypes(getter, skip), getter.Out(0))
	if setter.NumOut() != 0 || !sameParams(paramTypes(setter, skip), want) {
		return fmt.Errorf(
			"%w: setter of property '%s' on type '%s' must take the getter parameters plus the value and return nothing",
			ErrInvalidRegistration, name, t.name,
		)
	}

	return nil
}

func paramTypes(fn reflect.Type, skip int) []reflect.Type {
	params := make([]reflect.Type, 0, fn.NumIn()-skip)
	for i := skip; i < fn.NumIn(); i++ {
		params = append(params, fn.In(i))
	}

	return params
}

func sameParams(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
