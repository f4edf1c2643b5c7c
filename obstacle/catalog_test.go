package obstacle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/surf-scout/vmath"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 4, c.Len())

	roofs := 0
	for i := 0; i < c.Len(); i++ {
		typ := c.Type(i)
		assert.NotEmpty(t, typ.Name)
		assert.Greater(t, typ.Extents.Depth(), 0.0, typ.Name)
		assert.GreaterOrEqual(t, typ.Extents.Down, 0.0, "%s sits below ground", typ.Name)
		if typ.IsRoof() {
			roofs++
			assert.Equal(t, typ.Roof, typ.Extents.Up, "%s roof must be its top face", typ.Name)
		}
	}
	assert.Equal(t, 2, roofs)
}

func TestNewCatalogRejectsBadTypes(t *testing.T) {
	_, err := NewCatalog()
	assert.Error(t, err)

	_, err = NewCatalog(Type{Name: "flipped", Extents: vmath.Extents{Right: -1, Left: 1, Up: 1, Front: 1}})
	assert.ErrorContains(t, err, "inverted")

	_, err = NewCatalog(Type{Name: "sunk", Extents: vmath.Extents{Right: 1, Up: 1, Front: 1}, Roof: -1})
	assert.ErrorContains(t, err, "negative roof")
}

func TestCatalogIsImmutable(t *testing.T) {
	types := []Type{{Name: "a", Extents: vmath.Extents{Right: 1, Up: 1, Front: 1}}}
	c, err := NewCatalog(types...)
	require.NoError(t, err)

	types[0].Name = "mutated"
	got := c.Type(0)
	got.Name = "also mutated"
	assert.Equal(t, "a", c.Type(0).Name)
}

func TestNearFarExtents(t *testing.T) {
	typ := Type{Extents: vmath.Extents{Front: 0.5, Rear: -2}}
	assert.Equal(t, 0.5, typ.NearExtent())
	assert.Equal(t, 2.0, typ.FarExtent())
}
