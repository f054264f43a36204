package containers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-cargoship/internal/types"
)

func TestNewSerialNumberFormat(t *testing.T) {
	tests := []struct {
		kind   types.ContainerKind
		prefix string
	}{
		{types.KindLiquid, "KON-L-"},
		{types.KindGas, "KON-G-"},
		{types.KindRefrigerated, "KON-R-"},
	}

	for _, tt := range tests {
		serial := NewSerialNumber(tt.kind)
		assert.True(t, strings.HasPrefix(serial, tt.prefix), "serial %q should start with %q", serial, tt.prefix)
		assert.Len(t, serial, len(tt.prefix)+8, "serial %q should carry an 8-character suffix", serial)
	}
}

func TestNewSerialNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		serial := NewSerialNumber(types.KindLiquid)
		assert.False(t, seen[serial], "serial %q generated twice", serial)
		seen[serial] = true
	}
}

func TestSetMaxLoadDoesNotRevalidate(t *testing.T) {
	c, err := NewGasContainer(250, 1800, 600, 2000, 10)
	require.NoError(t, err)
	require.NoError(t, c.Load(1500))

	// Lowering the limit keeps the existing cargo but constrains the next load.
	c.SetMaxLoad(1000)
	assert.Equal(t, 1500.0, c.LoadMass(), "existing cargo is not revalidated")
	assert.Error(t, c.Load(1500), "the new limit applies to subsequent loads")
	assert.Equal(t, 1000.0, c.MaxLoad())
}

func TestDescribeVariants(t *testing.T) {
	liquid, err := NewLiquidContainer(250, 2000, 600, 1000, true, WithSerialNumber("KON-L-aaaa0001"))
	require.NoError(t, err)
	assert.Contains(t, Describe(liquid), "hazardous liquid")
	assert.Contains(t, Describe(liquid), "KON-L-aaaa0001")

	gas, err := NewGasContainer(250, 1800, 600, 2000, 12.5, WithSerialNumber("KON-G-aaaa0001"))
	require.NoError(t, err)
	assert.Contains(t, Describe(gas), "gas at 12.5 atm")

	reefer, err := NewRefrigeratedContainer(260, 2200, 600, 1500, "Bananas", 13.3, WithSerialNumber("KON-R-aaaa0001"))
	require.NoError(t, err)
	assert.Contains(t, Describe(reefer), "Bananas")
}
