package member_test

import (
	"reflect"
	"testing"

	"github.com/anoideaopen/accessor/member"
	"github.com/anoideaopen/accessor/registry"
	"github.com/stretchr/testify/require"
)

func TestFindMethod(t *testing.T) {
	typ := typeOf(t, &Crate{})

	m, err := member.FindMethod(typ, "Pack", member.PublicInstance)
	require.NoError(t, err)
	require.Equal(t, "Pack", m.Name())
	require.Equal(t, []reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)}, m.ParamTypes())
}

func TestFindMethodNotFound(t *testing.T) {
	typ := typeOf(t, &Crate{})

	_, err := member.FindMethod(typ, "Unpack", member.PublicInstance)
	require.ErrorIs(t, err, member.ErrMethodNotFound)
	require.Contains(t, err.Error(), "Crate")
	require.Contains(t, err.Error(), "Unpack")
	require.Contains(t, err.Error(), "public instance")
}

func TestFindMethodAmbiguousOverload(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterMethod("Ping", func(c *Crate, n int) string {
		return "pong"
	}))

	_, err := member.FindMethod(typ, "Ping", member.PublicInstance)
	require.ErrorIs(t, err, registry.ErrAmbiguousOverload)
	require.Contains(t, err.Error(), "Ping")
}

func TestFindMethodByTypes(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterMethod("Ping", func(c *Crate, n int) string {
		return "pong with count"
	}))

	t.Run("empty signature selects the parameterless overload", func(t *testing.T) {
		m, err := member.FindMethodByTypes(typ, "Ping", member.PublicInstance)
		require.NoError(t, err)
		require.Empty(t, m.ParamTypes())

		out, err := m.Call(&Crate{})
		require.NoError(t, err)
		require.Equal(t, []any{"pong"}, out)
	})

	t.Run("single-int signature selects the registered overload", func(t *testing.T) {
		m, err := member.FindMethodByTypes(typ, "Ping", member.PublicInstance, reflect.TypeOf(0))
		require.NoError(t, err)
		require.Len(t, m.ParamTypes(), 1)

		out, err := m.Call(&Crate{}, 3)
		require.NoError(t, err)
		require.Equal(t, []any{"pong with count"}, out)
	})

	t.Run("no overload matches", func(t *testing.T) {
		_, err := member.FindMethodByTypes(
			typ, "Ping", member.PublicInstance,
			reflect.TypeOf(0), reflect.TypeOf(""),
		)
		require.ErrorIs(t, err, member.ErrMethodNotFound)
		require.Contains(t, err.Error(), "Ping(int,string)")
	})
}

func TestFindStaticMethod(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterFunc("Make", func(label string) *Crate {
		return &Crate{Label: label}
	}))

	m, err := member.FindMethod(typ, "Make", member.PublicStatic)
	require.NoError(t, err)

	out, err := m.Call(nil, "bulk")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "bulk", out[0].(*Crate).Label)

	_, err = member.FindMethod(typ, "Pack", member.PublicStatic)
	require.ErrorIs(t, err, member.ErrMethodNotFound)
	require.Contains(t, err.Error(), "public static")
}

func TestMethodCallArgumentCount(t *testing.T) {
	typ := typeOf(t, &Crate{})

	m, err := member.FindMethod(typ, "Pack", member.PublicInstance)
	require.NoError(t, err)

	_, err = m.Call(&Crate{}, "apples")
	require.ErrorIs(t, err, member.ErrIncorrectArgumentCount)
}

func TestMethodPointerReceiverRequired(t *testing.T) {
	typ := typeOf(t, &Crate{})

	m, err := member.FindMethod(typ, "Ping", member.PublicInstance)
	require.NoError(t, err)

	_, err = m.Call(Crate{})
	require.ErrorIs(t, err, member.ErrInvalidReceiver)
}
