package member

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/anoideaopen/accessor/registry"
)

// Method is the descriptor of a resolved method. Instance methods are
// receiver-first func values, discovered from the pointer method set of the
// Go type or registered as explicit overloads; static methods are plain
// func values from the registered metadata.
type Method struct {
	owner  *registry.Type
	name   string
	static bool
	fn     reflect.Value
}

// FindMethod searches the type for a method of the given name, without
// signature matching. Fails with ErrMethodNotFound when no method of that
// name and visibility exists. When the name resolves to more than one
// overload the lookup fails with the registry's ambiguity error, passed
// through so callers can tell "absent" from "ambiguous".
func FindMethod(t *registry.Type, name string, filter Filter) (*Method, error) {
	overloads := methodOverloads(t, name, filter)

	switch len(overloads) {
	case 0:
		return nil, fmt.Errorf("%w: type '%s' has no %s method '%s'", ErrMethodNotFound, t.Name(), filter, name)
	case 1:
		return &Method{owner: t, name: name, static: filter == PublicStatic, fn: overloads[0]}, nil
	default:
		return nil, fmt.Errorf(
			"%w: type '%s' has %d %s methods named '%s'",
			registry.ErrAmbiguousOverload, t.Name(), len(overloads), filter, name,
		)
	}
}

// FindMethodByTypes searches the type for a method of the given name whose
// parameter list exactly matches the given types, element-wise and in
// order. No assignable-type matching is attempted. Fails with
// ErrMethodNotFound whose message carries the pseudo-signature
// "name(type1,type2,...)" when no overload matches.
func FindMethodByTypes(t *registry.Type, name string, filter Filter, paramTypes ...reflect.Type) (*Method, error) {
	static := filter == PublicStatic

	for _, fn := range methodOverloads(t, name, filter) {
		m := &Method{owner: t, name: name, static: static, fn: fn}
		if sameTypes(m.ParamTypes(), paramTypes) {
			return m, nil
		}
	}

	return nil, fmt.Errorf(
		"%w: type '%s' has no %s method '%s'",
		ErrMethodNotFound, t.Name(), filter, pseudoSignature(name, paramTypes),
	)
}

// methodOverloads gathers all methods of the given name visible under the
// filter: the registered overload set, plus, for instance lookups, a fresh
// linear scan over the pointer method set of the Go type.
func methodOverloads(t *registry.Type, name string, filter Filter) []reflect.Value {
	if filter == PublicStatic {
		return t.Funcs(name)
	}

	var overloads []reflect.Value

	ptype := reflect.PointerTo(t.GoType())
	for i := 0; i < ptype.NumMethod(); i++ {
		if m := ptype.Method(i); m.Name == name {
			overloads = append(overloads, m.Func)
		}
	}

	return append(overloads, t.MethodOverloads(name)...)
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.name
}

// ParamTypes returns the parameter types of the method, excluding the
// receiver for instance methods.
func (m *Method) ParamTypes() []reflect.Type {
	fnType := m.fn.Type()

	skip := 0
	if !m.static {
		skip = 1
	}

	params := make([]reflect.Type, 0, fnType.NumIn()-skip)
	for i := skip; i < fnType.NumIn(); i++ {
		params = append(params, fnType.In(i))
	}

	return params
}

// Call invokes the method with the given arguments: on the given receiver
// for instance methods, on a nil receiver for static ones. The output is a
// slice of the method's return values; a void method yields an empty slice.
// An error returned by the method itself is an ordinary output value, and a
// panic inside the method propagates unmodified.
func (m *Method) Call(recv any, args ...any) ([]any, error) {
	in, err := argValues(m.ParamTypes(), args, "call "+m.name)
	if err != nil {
		return nil, err
	}

	return m.call(recv, in)
}

func (m *Method) call(recv any, in []reflect.Value) ([]any, error) {
	if !m.static {
		val, err := receiverFor(m.owner, recv, m.fn.Type().In(0))
		if err != nil {
			return nil, err
		}
		in = append([]reflect.Value{val}, in...)
	}

	output := make([]any, 0, m.fn.Type().NumOut())
	for _, res := range callFunc(m.fn, in) {
		output = append(output, res.Interface())
	}

	return output, nil
}

func sameTypes(a, b []reflect.Type) bool {
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

// pseudoSignature renders "name(type1,type2,...)" for lookup error messages.
func pseudoSignature(name string, paramTypes []reflect.Type) string {
	names := make([]string, 0, len(paramTypes))
	for _, p := range paramTypes {
		names = append(names, p.String())
	}

	return name + "(" + strings.Join(names, ",") + ")"
}
