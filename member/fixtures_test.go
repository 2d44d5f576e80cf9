package member_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anoideaopen/accessor/registry"
	"github.com/stretchr/testify/require"
)

// typeOf builds an unattached descriptor, failing the test on registration
// errors.
func typeOf(t *testing.T, v any) *registry.Type {
	t.Helper()

	typ, err := registry.TypeOf(v)
	require.NoError(t, err)

	return typ
}

// Crate is the test subject: exported fields, a Code property following the
// accessor-pair convention, an Item indexer pair and a handful of methods.
type Crate struct {
	Label    string
	Capacity int

	code  string
	items map[int]int
}

func (c *Crate) Code() string        { return c.code }
func (c *Crate) SetCode(code string) { c.code = code }

func (c *Crate) Item(i int) int { return c.items[i] }

func (c *Crate) SetItem(i int, v int) {
	if c.items == nil {
		c.items = make(map[int]int)
	}
	c.items[i] = v
}

func (c *Crate) Ping() string { return "pong" }

func (c *Crate) Pack(kind string, count int) string {
	return fmt.Sprintf("%d %s", count, kind)
}

func (c *Crate) Seal() {}

func (c *Crate) Check(count int) error {
	if count < 0 {
		return errors.New("negative count")
	}

	return nil
}

// Pallet has no members beyond one exported field; used for not-found
// lookups.
type Pallet struct {
	Slots int
}
