package registry_test

import (
	"testing"

	"github.com/anoideaopen/accessor/registry"
	"github.com/stretchr/testify/require"
)

type Crate struct {
	Label string
}

type Pallet struct {
	Slots int
}

func TestRegistryTypeSearch(t *testing.T) {
	warehouse := registry.NewModule("warehouse")
	_, err := warehouse.Register(&Crate{})
	require.NoError(t, err)
	_, err = warehouse.Register(&Pallet{})
	require.NoError(t, err)

	shipping := registry.NewModule("shipping")
	_, err = shipping.Register(&Crate{})
	require.NoError(t, err)

	reg := registry.New(warehouse, shipping)

	t.Run("name defined in exactly one module", func(t *testing.T) {
		typ, err := reg.Type("Pallet")
		require.NoError(t, err)
		require.Equal(t, "Pallet", typ.Name())
		require.Equal(t, "warehouse", typ.Module().Name())
	})

	t.Run("name defined in two modules is ambiguous", func(t *testing.T) {
		_, err := reg.Type("Crate")
		require.ErrorIs(t, err, registry.ErrAmbiguousTypeName)
		require.Contains(t, err.Error(), "Crate")
		require.Contains(t, err.Error(), "warehouse")
		require.Contains(t, err.Error(), "shipping")
	})

	t.Run("name defined in zero modules is not found", func(t *testing.T) {
		_, err := reg.Type("Container")
		require.ErrorIs(t, err, registry.ErrTypeNotFound)
		require.Contains(t, err.Error(), "Container")
	})
}

func TestRegistryAdd(t *testing.T) {
	reg := registry.New()

	_, err := reg.Type("Crate")
	require.ErrorIs(t, err, registry.ErrTypeNotFound)

	warehouse := registry.NewModule("warehouse")
	_, err = warehouse.Register(&Crate{})
	require.NoError(t, err)
	reg.Add(warehouse)

	typ, err := reg.Type("Crate")
	require.NoError(t, err)
	require.Equal(t, "Crate", typ.Name())
	require.Len(t, reg.Modules(), 1)
}
