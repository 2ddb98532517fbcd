package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReloadableCatalogWithoutSeedPath(t *testing.T) {
	cat, err := NewReloadableCatalog("")
	require.NoError(t, err)

	require.Equal(t, NewStaticCatalog().Version(), cat.Version())

	changed, err := cat.Reload()
	require.NoError(t, err)
	require.False(t, changed)

	spec, found := cat.MotherboardSpec("b650")
	require.True(t, found)
	require.Equal(t, 2, spec.M2Slots)
}
