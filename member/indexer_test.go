package member_test

import (
	"testing"

	"github.com/anoideaopen/accessor/member"
	"github.com/stretchr/testify/require"
)

func TestIndexerRoundTrip(t *testing.T) {
	typ := typeOf(t, &Crate{})
	crate := &Crate{}

	require.NoError(t, member.SetIndex(typ, crate, 8, 0))

	value, err := member.GetIndex(typ, crate, 0)
	require.NoError(t, err)
	require.Equal(t, 8, value)
}

func TestIndexerLookupIgnoresName(t *testing.T) {
	typ := typeOf(t, &Crate{})

	p, err := member.FindIndexer(typ, member.PublicInstance)
	require.NoError(t, err)
	require.Equal(t, "Item", p.Name())
	require.Len(t, p.IndexTypes(), 1)
}

func TestIndexerNotFound(t *testing.T) {
	typ := typeOf(t, &Pallet{})

	_, err := member.FindIndexer(typ, member.PublicInstance)
	require.ErrorIs(t, err, member.ErrIndexerNotFound)
	require.Contains(t, err.Error(), "Pallet")
	require.Contains(t, err.Error(), "public instance")
}

func TestStaticIndexerRoundTrip(t *testing.T) {
	typ := typeOf(t, &Crate{})
	reserved := make(map[string]int)
	require.NoError(t, typ.RegisterStaticProperty(
		"Reserved",
		func(zone string) int { return reserved[zone] },
		func(zone string, v int) { reserved[zone] = v },
	))

	require.NoError(t, member.SetIndex(typ, nil, 3, "north"))

	value, err := member.GetIndex(typ, nil, "north")
	require.NoError(t, err)
	require.Equal(t, 3, value)
}

func TestIndexerWrongIndexCount(t *testing.T) {
	typ := typeOf(t, &Crate{})

	_, err := member.GetIndex(typ, &Crate{}, 0, 1)
	require.ErrorIs(t, err, member.ErrIncorrectArgumentCount)
}
