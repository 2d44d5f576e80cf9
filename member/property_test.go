package member_test

import (
	"testing"

	"github.com/anoideaopen/accessor/member"
	"github.com/stretchr/testify/require"
)

func TestPropertyAccessorPair(t *testing.T) {
	typ := typeOf(t, &Crate{})
	crate := &Crate{}

	p, err := member.FindProperty(typ, "Code", member.PublicInstance)
	require.NoError(t, err)
	require.Equal(t, "Code", p.Name())
	require.True(t, p.CanWrite())
	require.Empty(t, p.IndexTypes())

	require.NoError(t, p.Set(crate, "C-17"))
	value, err := p.Get(crate)
	require.NoError(t, err)
	require.Equal(t, "C-17", value)
	require.Equal(t, "C-17", crate.code)
}

func TestPropertyThroughValueAccessors(t *testing.T) {
	typ := typeOf(t, &Crate{})
	crate := &Crate{}

	// "Code" is not a struct field, so the combined lookup falls through to
	// the property category.
	require.NoError(t, member.SetValue(typ, crate, "Code", "C-18"))

	value, err := member.GetValue(typ, crate, "Code")
	require.NoError(t, err)
	require.Equal(t, "C-18", value)
}

func TestPropertyRegisteredReadOnly(t *testing.T) {
	typ := typeOf(t, &Crate{})
	require.NoError(t, typ.RegisterProperty(
		"Summary",
		func(c *Crate) string { return c.Label + "/" + c.code },
		nil,
	))

	p, err := member.FindProperty(typ, "Summary", member.PublicInstance)
	require.NoError(t, err)
	require.False(t, p.CanWrite())

	value, err := p.Get(&Crate{Label: "box", code: "C-19"})
	require.NoError(t, err)
	require.Equal(t, "box/C-19", value)

	err = p.Set(&Crate{}, "nope")
	require.ErrorIs(t, err, member.ErrReadOnlyProperty)
}

func TestStaticPropertyRoundTrip(t *testing.T) {
	typ := typeOf(t, &Crate{})
	maxWeight := 100
	require.NoError(t, typ.RegisterStaticProperty(
		"MaxWeight",
		func() int { return maxWeight },
		func(v int) { maxWeight = v },
	))

	value, err := member.GetStatic(typ, "MaxWeight")
	require.NoError(t, err)
	require.Equal(t, 100, value)

	require.NoError(t, member.SetStatic(typ, "MaxWeight", 120))
	require.Equal(t, 120, maxWeight)
}

func TestPropertyNotFound(t *testing.T) {
	typ := typeOf(t, &Pallet{})

	_, err := member.FindProperty(typ, "Code", member.PublicInstance)
	require.ErrorIs(t, err, member.ErrPropertyNotFound)
	require.Contains(t, err.Error(), "Pallet")
	require.Contains(t, err.Error(), "Code")
	require.Contains(t, err.Error(), "public instance")
}

func TestFieldOrPropertyNotFound(t *testing.T) {
	typ := typeOf(t, &Pallet{})

	_, err := member.FindFieldOrProperty(typ, "Code", member.PublicInstance)
	require.ErrorIs(t, err, member.ErrMemberNotFound)
	require.Contains(t, err.Error(), "field or property")
	require.Contains(t, err.Error(), "Pallet")
	require.Contains(t, err.Error(), "Code")
}
