package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/registry"
)

// receiverFor converts the caller-supplied receiver into a reflect.Value of
// the receiver type 'want' expected by a member of type 't'. A pointer
// receiver is dereferenced when the member expects the value form; a value
// receiver is rejected when the member expects a pointer, since mutations
// through a silent copy would be lost.
func receiverFor(t *registry.Type, recv any, want reflect.Type) (reflect.Value, error) {
	if recv == nil {
		return reflect.Value{}, fmt.Errorf("%w: receiver for instance member of type '%s'", ErrNilArgument, t.Name())
	}

	val := reflect.ValueOf(recv)
	rtype := t.GoType()

	switch val.Type() {
	case want:
		return val, nil
	case reflect.PointerTo(rtype):
		if val.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: receiver for instance member of type '%s'", ErrNilArgument, t.Name())
		}
		if want == rtype {
			return val.Elem(), nil
		}
	case rtype:
		if want == reflect.PointerTo(rtype) {
			return reflect.Value{}, fmt.Errorf(
				"%w: member of type '%s' requires an addressable receiver, pass '*%s'",
				ErrInvalidReceiver, t.Name(), t.Name(),
			)
		}
	}

	return reflect.Value{}, fmt.Errorf(
		"%w: expected '%s' or '*%s', got '%s'",
		ErrInvalidReceiver, t.Name(), t.Name(), val.Type().String(),
	)
}

// assign stores 'value' into the settable destination 'dst'. A nil value is
// allowed only for destinations with a nil zero value.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		switch dst.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		default:
			return fmt.Errorf("%w: nil is not assignable to '%s'", ErrInvalidArgumentValue, dst.Type().String())
		}
	}

	val := reflect.ValueOf(value)
	if !val.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf(
			"%w: value of type '%s' is not assignable to '%s'",
			ErrInvalidArgumentValue, val.Type().String(), dst.Type().String(),
		)
	}

	dst.Set(val)

	return nil
}

// callFunc invokes fn with exact-typed arguments. Variadic funcs go through
// CallSlice so the trailing slice argument lands in the variadic parameter
// instead of being passed as a single value.
func callFunc(fn reflect.Value, in []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(in)
	}

	return fn.Call(in)
}

// argValues converts a caller-supplied argument list into reflect.Values of
// the given parameter types.
func argValues(params []reflect.Type, args []any, what string) ([]reflect.Value, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: %s",
			ErrIncorrectArgumentCount, len(args), len(params), what,
		)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		dst := reflect.New(params[i]).Elem()
		if err := assign(dst, arg); err != nil {
			return nil, fmt.Errorf("%w: %s, argument %d", err, what, i)
		}
		in[i] = dst
	}

	return in, nil
}
