package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arden-env/esia-reconcile/internal/model"
)

func testConversions() []model.UnitConversion {
	return []model.UnitConversion{
		{Alias: "km2", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "ha", BaseUnit: "sq m", Factor: 10000},
		{Alias: "hectares", BaseUnit: "sq m", Factor: 10000},
		{Alias: "sq m", BaseUnit: "sq m", Factor: 1},
		{Alias: "m2", BaseUnit: "sq m", Factor: 1},
		{Alias: "tonnes", BaseUnit: "kg", Factor: 1000},
	}
}

func TestRegistry_NormalizeExactCaseInsensitive(t *testing.T) {
	reg, err := NewRegistry(testConversions())
	require.NoError(t, err)

	base, factor := reg.Normalize("Ha")
	assert.Equal(t, "sq m", base)
	assert.Equal(t, 10000.0, factor)

	base, factor = reg.Normalize("  TONNES ")
	assert.Equal(t, "kg", base)
	assert.Equal(t, 1000.0, factor)
}

func TestRegistry_NormalizeUnknownIsIdentity(t *testing.T) {
	reg, err := NewRegistry(testConversions())
	require.NoError(t, err)

	base, factor := reg.Normalize("furlongs")
	assert.Equal(t, "furlongs", base)
	assert.Equal(t, 1.0, factor)
}

func TestRegistry_NormalizeSubstringFirstInTableWins(t *testing.T) {
	// "km2/yr" contains both "km2" and "m2". The scan stops at the first
	// table entry that is a substring, so declaring km2 before m2 is what
	// makes the compound resolve to square kilometres.
	reg, err := NewRegistry(testConversions())
	require.NoError(t, err)

	base, factor := reg.Normalize("km2/yr")
	assert.Equal(t, "sq m", base)
	assert.Equal(t, 1e6, factor)

	flipped := []model.UnitConversion{
		{Alias: "m2", BaseUnit: "sq m", Factor: 1},
		{Alias: "km2", BaseUnit: "sq m", Factor: 1e6},
	}
	reg2, err := NewRegistry(flipped)
	require.NoError(t, err)

	_, factor = reg2.Normalize("km2/yr")
	assert.Equal(t, 1.0, factor, "reordered table must change the outcome")
}

func TestRegistry_Convert(t *testing.T) {
	reg, err := NewRegistry(testConversions())
	require.NoError(t, err)

	value, base := reg.Convert(500, "ha")
	assert.Equal(t, 5e6, value)
	assert.Equal(t, "sq m", base)
}

func TestNewRegistry_RejectsNonPositiveFactor(t *testing.T) {
	_, err := NewRegistry([]model.UnitConversion{
		{Alias: "ha", BaseUnit: "sq m", Factor: 0},
	})
	assert.Error(t, err)
}

func TestNewRegistry_RejectsDuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]model.UnitConversion{
		{Alias: "ha", BaseUnit: "sq m", Factor: 10000},
		{Alias: "HA", BaseUnit: "sq m", Factor: 10000},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}
