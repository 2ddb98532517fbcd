package engine

import (
	"testing"

	"rigforge/internal/catalog"
	"rigforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCPU(socket string, watts float64, tier string) *model.Part {
	return &model.Part{
		ID: "cpu-1", Name: "Test CPU", Manufacturer: "acme", Price: 300,
		Category: model.CategoryCPU,
		Specs:    model.PartSpecs{CPU: &model.CPUSpecs{Socket: socket, PowerConsumption: watts, Tier: tier}},
	}
}

func testMotherboard(socket, chipset string, memoryTypes ...string) *model.Part {
	return &model.Part{
		ID: "mb-1", Name: "Test Board", Manufacturer: "acme", Price: 200,
		Category: model.CategoryMotherboard,
		Specs: model.PartSpecs{Motherboard: &model.MotherboardSpecs{
			Socket: socket, Chipset: chipset, MemoryTypes: memoryTypes, PowerConsumption: 60,
		}},
	}
}

func testMemory(memType string) *model.Part {
	return &model.Part{
		ID: "mem-1", Name: "Test Memory", Manufacturer: "acme", Price: 100,
		Category: model.CategoryMemory,
		Specs:    model.PartSpecs{Memory: &model.MemorySpecs{Type: memType, CapacityGB: 32, PowerConsumption: 5}},
	}
}

func testGPU(length, watts float64, tier string) *model.Part {
	return &model.Part{
		ID: "gpu-1", Name: "Test GPU", Manufacturer: "acme", Price: 600,
		Category: model.CategoryGPU,
		Specs:    model.PartSpecs{GPU: &model.GPUSpecs{Length: length, PowerConsumption: watts, Tier: tier}},
	}
}

func testPSU(wattage, length float64) *model.Part {
	return &model.Part{
		ID: "psu-1", Name: "Test PSU", Manufacturer: "acme", Price: 120,
		Category: model.CategoryPSU,
		Specs:    model.PartSpecs{PSU: &model.PSUSpecs{Wattage: wattage, Length: length}},
	}
}

func testCase(caseType string) *model.Part {
	return &model.Part{
		ID: "case-1", Name: "Test Case", Manufacturer: "acme", Price: 90,
		Category: model.CategoryCase,
		Specs:    model.PartSpecs{Case: &model.CaseSpecs{CaseType: caseType}},
	}
}

func testCooler(height float64) *model.Part {
	return &model.Part{
		ID: "cooler-1", Name: "Test Cooler", Manufacturer: "acme", Price: 60,
		Category: model.CategoryCooler,
		Specs:    model.PartSpecs{Cooler: &model.CoolerSpecs{Height: height, PowerConsumption: 5}},
	}
}

func testStorage(id, iface string) *model.Part {
	return &model.Part{
		ID: id, Name: "Test Drive", Manufacturer: "acme", Price: 80,
		Category: model.CategoryStorage,
		Specs:    model.PartSpecs{Storage: &model.StorageSpecs{Interface: iface, CapacityGB: 1000, PowerConsumption: 8}},
	}
}

func TestEvaluateEmptyConfigurationScoresFull(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	result, err := Evaluate(&model.Configuration{}, cat)
	require.NoError(t, err)

	assert.True(t, result.IsCompatible)
	assert.True(t, result.IsValid)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Violations)

	// Every check reports not-yet-configured, none is counted as a defect.
	for _, issue := range result.Issues {
		assert.Equal(t, model.IssueMissingPart, issue.Type)
		assert.Equal(t, model.SeverityInfo, issue.Severity)
	}
}

func TestEvaluateRejectsMalformedSnapshot(t *testing.T) {
	cat := catalog.NewStaticCatalog()

	// A GPU in the CPU slot is a caller contract violation, not a finding.
	cfg := &model.Configuration{
		Core: model.CoreComponents{CPU: testGPU(280, 200, "high")},
	}
	result, err := Evaluate(cfg, cat)
	require.Error(t, err)
	assert.Nil(t, result)
}

// Scenario: motherboard chipset and case type unknown to the catalog.
func TestResolveLimitsUnknownIDsFallBackToDefaults(t *testing.T) {
	cat := catalog.NewStaticCatalog()

	resolved := ResolveLimits(testMotherboard("AM5", "xx999"), testCase("shoebox"), cat)
	assert.False(t, resolved.MotherboardKnown)
	assert.False(t, resolved.CaseKnown)
	assert.Equal(t, catalog.DefaultMotherboardSpec.M2Slots, resolved.Limits.MaxM2Slots)
	assert.Equal(t, catalog.DefaultCaseSpec.MaxGPULength, resolved.Limits.MaxGPULength)

	// Nothing selected resolves to the same defaults.
	empty := ResolveLimits(nil, nil, cat)
	assert.Equal(t, resolved.Limits, empty.Limits)
}

func TestResolveLimitsIsDeterministic(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	mb := testMotherboard("AM5", "B650")
	cs := testCase("mid-tower")

	first := ResolveLimits(mb, cs, cat)
	second := ResolveLimits(mb, cs, cat)
	assert.Equal(t, first, second)
	assert.True(t, first.MotherboardKnown)
	assert.True(t, first.CaseKnown)
}

// Scenario: CPU socket AM5 on an LGA1700 board.
func TestEvaluateSocketMismatchIsCritical(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			CPU:         testCPU("AM5", 105, "high"),
			Motherboard: testMotherboard("LGA1700", "z790", "DDR5"),
		},
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	mismatches := 0
	for _, issue := range result.Issues {
		if issue.Type == model.IssueSocketMismatch {
			mismatches++
			assert.Equal(t, model.SeverityCritical, issue.Severity)
			assert.ElementsMatch(t, []string{"cpu-1", "mb-1"}, issue.AffectedParts)
		}
	}
	assert.Equal(t, 1, mismatches)
	assert.False(t, result.IsCompatible)
	assert.LessOrEqual(t, result.Score, 70)
}

// Scenario: three NVMe drives on a two-slot board.
func TestEvaluateNVMeOverflowIsErrorViolation(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			Motherboard: testMotherboard("AM5", "b650", "DDR5"),
		},
		Additional: model.AdditionalComponents{
			Storage: []*model.Part{
				testStorage("ssd-1", "NVMe"),
				testStorage("ssd-2", "NVMe"),
				testStorage("ssd-3", "NVMe"),
			},
		},
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	require.NotEmpty(t, result.Violations)
	v := result.Violations[0]
	assert.Equal(t, model.ViolationSlotOverflow, v.Type)
	assert.Equal(t, model.ViolationError, v.Severity)
	assert.False(t, result.IsValid)
}

// Scenario: 400W PSU against a 500W estimated draw.
func TestEvaluatePowerShortfallIsCritical(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			CPU: testCPU("AM5", 200, "high"),
			GPU: testGPU(280, 250, "high"),
			PSU: testPSU(400, 150),
		},
	}

	// 200 CPU + 250 GPU + 50 baseline = 500W estimated draw.
	assert.InDelta(t, 500, EstimateDraw(cfg), 0.01)

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Issues {
		if issue.Type == model.IssuePowerInsufficient {
			found = true
			assert.Equal(t, model.SeverityCritical, issue.Severity)
		}
	}
	assert.True(t, found)
	assert.False(t, result.IsCompatible)
}

// Scenario: a fully matched build.
func TestEvaluateMatchedBuildScoresFull(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			CPU:         testCPU("AM5", 105, "high"),
			Motherboard: testMotherboard("AM5", "b650", "DDR4", "DDR5"),
			Memory:      testMemory("DDR5"),
			GPU:         testGPU(300, 220, "high"),
			PSU:         testPSU(750, 160),
			Case:        testCase("mid-tower"),
			Cooler:      testCooler(158),
		},
		Additional: model.AdditionalComponents{
			Storage: []*model.Part{testStorage("ssd-1", "NVMe"), testStorage("hdd-1", "SATA")},
		},
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	assert.True(t, result.IsCompatible)
	assert.True(t, result.IsValid)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Violations)
	assert.Len(t, result.Details, 5)
	for _, d := range result.Details {
		assert.True(t, d.Passed, "check %s should pass: %s", d.Check, d.Message)
	}
}

func TestEvaluateUnknownChipsetAddsLimitsNote(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			Motherboard: testMotherboard("AM5", "xx999", "DDR5"),
			Case:        testCase("shoebox"),
		},
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	notes := 0
	for _, d := range result.Details {
		if d.Check == "limits" {
			notes++
			assert.True(t, d.Passed)
		}
	}
	assert.Equal(t, 2, notes)
	assert.True(t, result.IsValid)
}

func TestEvaluateTierGapIsAdvisoryWarning(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core: model.CoreComponents{
			CPU: testCPU("AM5", 65, "entry"),
			GPU: testGPU(300, 300, "enthusiast"),
		},
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	found := false
	for _, issue := range result.Warnings {
		if issue.Type == model.IssueBottleneck {
			found = true
			assert.Equal(t, model.SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, found)
	// Advisory findings never make the build incompatible on their own.
	assert.True(t, result.IsCompatible)
}

func TestEvaluateBudgetOverflowIsWarning(t *testing.T) {
	cat := catalog.NewStaticCatalog()
	cfg := &model.Configuration{
		Core:   model.CoreComponents{CPU: testCPU("AM5", 105, "high")},
		Budget: 100, // CPU alone costs 300
	}

	result, err := Evaluate(cfg, cat)
	require.NoError(t, err)

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, model.ViolationBudgetExceeded, result.Violations[0].Type)
	assert.Equal(t, model.ViolationWarning, result.Violations[0].Severity)
	assert.True(t, result.IsValid)
	assert.Equal(t, 90, result.Score)
}
