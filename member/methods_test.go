package member_test

import (
	"testing"

	"github.com/anoideaopen/accessor/member"
	"github.com/stretchr/testify/require"
)

func TestMethodsEnumeration(t *testing.T) {
	typ := typeOf(t, &Crate{})

	names := member.Methods(typ, member.PublicInstance)
	require.Equal(t, []string{
		"Check", "Code", "Item", "Pack", "Ping", "Seal", "SetCode", "SetItem",
	}, names)
}

func TestMethodsEnumerationWithRegistered(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterMethod("Archive", func(c *Crate) {}))
	require.NoError(t, typ.RegisterFunc("Make", func() *Crate { return &Crate{} }))

	names := member.Methods(typ, member.PublicInstance)
	require.Contains(t, names, "Archive")
	require.NotContains(t, names, "Make")

	statics := member.Methods(typ, member.PublicStatic)
	require.Equal(t, []string{"Make"}, statics)
}

func TestPropertiesEnumeration(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterProperty(
		"Summary",
		func(c *Crate) string { return c.Label },
		nil,
	))

	names := member.Properties(typ, member.PublicInstance)
	require.Equal(t, []string{"Code", "Item", "Summary"}, names)

	require.Empty(t, member.Properties(typ, member.PublicStatic))
}
