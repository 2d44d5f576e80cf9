package member

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// valueOf decodes the string form of one argument into a reflect.Value of
// the target type. String targets, behind a pointer or not, take the input
// as is. Anything else runs through the decoders in order: JSON (protojson
// for proto messages), encoding.TextUnmarshaler, proto bytes and
// encoding.BinaryUnmarshaler; the first one that accepts the input wins.
func valueOf(s string, t reflect.Type) (reflect.Value, error) {
	elem := t
	if t.Kind() == reflect.Pointer {
		elem = t.Elem()
	}

	holder := reflect.New(elem)

	out := holder.Elem()
	if elem != t {
		out = holder
	}

	if elem.Kind() == reflect.String {
		holder.Elem().SetString(s)
		return out, nil
	}

	raw := []byte(s)
	target := holder.Interface()

	if json.Valid(raw) {
		var err error
		if msg, ok := target.(proto.Message); ok {
			err = protojson.Unmarshal(raw, msg)
		} else {
			err = json.Unmarshal(raw, target)
		}
		if err == nil {
			return out, nil
		}
	}

	if u, ok := target.(encoding.TextUnmarshaler); ok && u.UnmarshalText(raw) == nil {
		return out, nil
	}

	if msg, ok := target.(proto.Message); ok && proto.Unmarshal(raw, msg) == nil {
		return out, nil
	}

	if u, ok := target.(encoding.BinaryUnmarshaler); ok && u.UnmarshalBinary(raw) == nil {
		return out, nil
	}

	return out, fmt.Errorf("%w: '%s': for type '%s'", ErrInvalidArgumentValue, s, t.String())
}
