package engine

import (
	"rigforge/internal/catalog"
	"rigforge/internal/model"
)

// resolvedLimits couples the derived PhysicalLimits with the lookup outcome
// so the aggregator can surface unknown-id notes downstream without the
// resolver ever failing.
type resolvedLimits struct {
	Limits           model.PhysicalLimits
	MotherboardKnown bool // false when no board selected or chipset unknown
	CaseKnown        bool // false when no case selected or case type unknown
}

// ResolveLimits derives the capacity ceilings from the selected motherboard
// and case. Absent or unknown parts resolve to the catalog defaults, which
// are deliberately non-zero so an empty build does not overflow. Identical
// (motherboard, case) pairs always yield identical limits.
func ResolveLimits(mb, cs *model.Part, cat catalog.Lookup) resolvedLimits {
	mbSpec := catalog.DefaultMotherboardSpec
	mbKnown := false
	if mb != nil && mb.Specs.Motherboard != nil {
		mbSpec, mbKnown = cat.MotherboardSpec(mb.Specs.Motherboard.Chipset)
	}

	caseSpec := catalog.DefaultCaseSpec
	caseKnown := false
	if cs != nil && cs.Specs.Case != nil {
		caseSpec, caseKnown = cat.CaseSpec(cs.Specs.Case.CaseType)
	}

	return resolvedLimits{
		Limits: model.PhysicalLimits{
			MaxM2Slots:         mbSpec.M2Slots,
			MaxSataConnectors:  mbSpec.SataConnectors,
			MaxMemorySlots:     mbSpec.MemorySlots,
			MaxExpansionSlots:  mbSpec.ExpansionSlots,
			MaxPowerConnectors: mbSpec.PowerConnectors,
			MaxFanMounts:       caseSpec.FanMounts,
			MaxGPULength:       caseSpec.MaxGPULength,
			MaxCoolerHeight:    caseSpec.MaxCoolerHeight,
			MaxPSULength:       caseSpec.MaxPSULength,
		},
		MotherboardKnown: mbKnown,
		CaseKnown:        caseKnown,
	}
}
