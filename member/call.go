package member

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/accessor/logger"
	"github.com/anoideaopen/accessor/registry"
)

// Call resolves a method by name alone and invokes it converting each
// string argument into the corresponding parameter type. Conversion tries,
// in order: the raw string itself, JSON (protojson for proto messages),
// encoding.TextUnmarshaler, proto bytes and encoding.BinaryUnmarshaler.
//
// A nil receiver selects the static overload set, anything else the
// instance one; names shared by several overloads fail with the registry's
// ambiguity error, as in Invoke.
//
// Example:
//
//	typ, err := registry.TypeOf(&Crate{})
//	out, err := member.Call(typ, crate, "Pack", `"apples"`, "12")
func Call(t *registry.Type, recv any, method string, args ...string) ([]any, error) {
	m, err := FindMethod(t, method, filterFor(recv))
	if err != nil {
		return nil, err
	}

	params := m.ParamTypes()
	if len(params) != len(args) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: call %s",
			ErrIncorrectArgumentCount, len(args), len(params), method,
		)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if in[i], err = valueOf(arg, params[i]); err != nil {
			return nil, fmt.Errorf("%w: call %s, argument %d", err, method, i)
		}
	}

	logger.Logger().Debugf("call %s.%s with %d string arguments", t.Name(), method, len(args))

	return m.call(recv, in)
}
