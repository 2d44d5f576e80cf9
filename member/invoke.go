package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/logger"
	"github.com/anoideaopen/accessor/registry"
)

// Invoke resolves a method by name alone and invokes it with the given
// arguments. A nil receiver selects the static overload set, anything else
// the instance one. No disambiguation by argument count is attempted: a
// name shared by several overloads fails with the registry's ambiguity
// error even if only one of them fits the arguments.
func Invoke(t *registry.Type, recv any, name string, args ...any) ([]any, error) {
	m, err := FindMethod(t, name, filterFor(recv))
	if err != nil {
		return nil, err
	}

	logger.Logger().Debugf("invoke %s.%s with %d arguments", t.Name(), name, len(args))

	return m.Call(recv, args...)
}

// InvokeByTypes resolves a method by name and exact parameter-type
// signature, then invokes it with the given arguments. This is the way to
// pick one overload out of several.
func InvokeByTypes(t *registry.Type, recv any, name string, paramTypes []reflect.Type, args ...any) ([]any, error) {
	m, err := FindMethodByTypes(t, name, filterFor(recv), paramTypes...)
	if err != nil {
		return nil, err
	}

	logger.Logger().Debugf("invoke %s.%s with %d arguments", t.Name(), pseudoSignature(name, paramTypes), len(args))

	return m.Call(recv, args...)
}

// InvokeInferred invokes a method resolving the parameter-type signature
// from the dynamic type of each argument. Every argument must therefore be
// non-nil; a nil argument fails with ErrNilArgument before any lookup is
// attempted.
func InvokeInferred(t *registry.Type, recv any, name string, args ...any) ([]any, error) {
	paramTypes := make([]reflect.Type, len(args))
	for i, arg := range args {
		if arg == nil {
			return nil, fmt.Errorf("%w: argument %d of '%s'", ErrNilArgument, i, name)
		}
		paramTypes[i] = reflect.TypeOf(arg)
	}

	return InvokeByTypes(t, recv, name, paramTypes, args...)
}
