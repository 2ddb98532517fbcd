package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCatalogKnownIDs(t *testing.T) {
	cat := NewStaticCatalog()

	spec, found := cat.MotherboardSpec("b650")
	assert.True(t, found)
	assert.Equal(t, 2, spec.M2Slots)

	// Lookup is case and whitespace insensitive.
	spec, found = cat.MotherboardSpec("  B650 ")
	assert.True(t, found)
	assert.Equal(t, 2, spec.M2Slots)

	caseSpec, found := cat.CaseSpec("mid-tower")
	assert.True(t, found)
	assert.Equal(t, 360.0, caseSpec.MaxGPULength)
}

func TestStaticCatalogUnknownIDsResolveToDefaults(t *testing.T) {
	cat := NewStaticCatalog()

	spec, found := cat.MotherboardSpec("xx999")
	assert.False(t, found)
	assert.Equal(t, DefaultMotherboardSpec, spec)

	caseSpec, found := cat.CaseSpec("shoebox")
	assert.False(t, found)
	assert.Equal(t, DefaultCaseSpec, caseSpec)

	// Empty ids fall back as well, never an error.
	_, found = cat.MotherboardSpec("")
	assert.False(t, found)
}

func TestStaticCatalogVersionIsStable(t *testing.T) {
	first := NewStaticCatalog()
	second := NewStaticCatalog()
	assert.Equal(t, first.Version(), second.Version())
	assert.NotEmpty(t, first.Version())
}

func TestLoadStaticCatalogMergesSeed(t *testing.T) {
	seed := `
motherboards:
  - chipsetId: b999
    m2Slots: 5
    sataConnectors: 8
    memorySlots: 8
    expansionSlots: 5
    powerConnectors: 12
cases:
  - caseTypeId: test-bench
    fanMounts: 2
    maxGpuLength: 500
    maxCpuCoolerHeight: 300
    maxPsuLength: 300
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	cat, err := LoadStaticCatalog(path)
	require.NoError(t, err)

	spec, found := cat.MotherboardSpec("b999")
	assert.True(t, found)
	assert.Equal(t, 5, spec.M2Slots)

	caseSpec, found := cat.CaseSpec("test-bench")
	assert.True(t, found)
	assert.Equal(t, 500.0, caseSpec.MaxGPULength)

	// Built-ins survive the merge, and the version reflects the new tables.
	_, found = cat.MotherboardSpec("b650")
	assert.True(t, found)
	assert.NotEqual(t, NewStaticCatalog().Version(), cat.Version())
}

func TestLoadStaticCatalogMissingFile(t *testing.T) {
	_, err := LoadStaticCatalog("/nonexistent/catalog.yaml")
	require.Error(t, err)
}
