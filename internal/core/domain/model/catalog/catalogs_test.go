package catalog_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brackets() []catalog.PackageType {
	return []catalog.PackageType{
		{ID: 2, SizeCode: "M", MaxWeightKg: 25, Description: "Mediano", IsActive: true},
		{ID: 1, SizeCode: "S", MaxWeightKg: 5, Description: "Chico", IsActive: true},
		{ID: 3, SizeCode: "XL", MaxWeightKg: 50, Description: "Extra", IsActive: false},
	}
}

func TestNewCatalogs(t *testing.T) {
	c := catalog.NewCatalogs(nil, brackets(), nil)

	require.Len(t, c.PackageTypes, 3)
	assert.Equal(t, kernel.ID(2), c.PackageTypes[0].ID)
	assert.Equal(t, kernel.ID(1), c.PackageTypes[1].ID)

	overflow := c.PackageTypes[2]
	assert.True(t, overflow.IsOverflow())
	assert.True(t, math.IsInf(overflow.MaxWeightKg, 1))
	assert.Equal(t, catalog.OverflowDescription, overflow.Label())
}

func TestNewCatalogs_DoesNotDuplicateOverflow(t *testing.T) {
	withOverflow := append(brackets(), catalog.OverflowBracket())
	c := catalog.NewCatalogs(nil, withOverflow, nil)

	overflows := 0
	for _, p := range c.PackageTypes {
		if p.IsOverflow() {
			overflows++
		}
	}
	assert.Equal(t, 1, overflows)
}

func TestCatalogs_Describe(t *testing.T) {
	c := catalog.NewCatalogs(nil, brackets(), nil)

	p, ok := c.Describe(1)
	require.True(t, ok)
	assert.Equal(t, "S - Chico", p.Label())

	p, ok = c.Describe(catalog.NoStandardBracket)
	require.True(t, ok)
	assert.Equal(t, catalog.OverflowDescription, p.Description)

	_, ok = c.Describe(catalog.Unclassified)
	assert.False(t, ok)

	_, ok = c.Describe(3)
	assert.False(t, ok, "inactive brackets are not presented")
}

func TestCatalogs_Lookups(t *testing.T) {
	c := catalog.NewCatalogs(
		[]catalog.Address{{ID: 10, Street: "Reforma", ExteriorNumber: "222", City: "CDMX", PostalCode: "06600"}},
		nil,
		[]catalog.StatusOption{{Label: "Creado", Value: "created"}, {Label: "Entregado", Value: "delivered"}},
	)

	assert.True(t, c.HasAddress(10))
	assert.False(t, c.HasAddress(20))
	assert.True(t, c.HasStatus("delivered"))
	assert.False(t, c.HasStatus("lost"))
	assert.Equal(t, "Entregado", c.StatusLabel("delivered"))
	assert.Equal(t, "lost", c.StatusLabel("lost"))
	assert.Equal(t, "Reforma 222 CDMX 06600", c.Addresses[0].Label())
}
