package catalog

// MotherboardPhysicalSpec physical capacities of a motherboard chipset.
type MotherboardPhysicalSpec struct {
	ChipsetID       string `json:"chipsetId"`
	M2Slots         int    `json:"m2Slots"`
	SataConnectors  int    `json:"sataConnectors"`
	MemorySlots     int    `json:"memorySlots"`
	ExpansionSlots  int    `json:"expansionSlots"`
	PowerConnectors int    `json:"powerConnectors"`
}

// CasePhysicalSpec physical capacities and clearances of a case type.
type CasePhysicalSpec struct {
	CaseTypeID      string  `json:"caseTypeId"`
	FanMounts       int     `json:"fanMounts"`
	MaxGPULength    float64 `json:"maxGpuLength"`       // mm
	MaxCoolerHeight float64 `json:"maxCpuCoolerHeight"` // mm
	MaxPSULength    float64 `json:"maxPsuLength"`       // mm
}

// Lookup resolves chipset and case type ids to physical specs. It never
// fails: unknown ids resolve to the documented conservative defaults so an
// unfinished build does not manufacture false overflow violations.
type Lookup interface {
	// MotherboardSpec returns the spec for a chipset id, or the default.
	// found is false when the id was unknown and the default was used.
	MotherboardSpec(chipsetID string) (spec MotherboardPhysicalSpec, found bool)

	// CaseSpec returns the spec for a case type id, or the default.
	CaseSpec(caseTypeID string) (spec CasePhysicalSpec, found bool)

	// Version identifies the catalog contents. Evaluation caches key on it
	// so a catalog change invalidates every cached result.
	Version() string
}

// Conservative defaults used when no motherboard or case has been chosen,
// or when an id is unknown to the catalog. Deliberately generous (a
// mainstream ATX board in a mid tower) rather than zero.
var (
	DefaultMotherboardSpec = MotherboardPhysicalSpec{
		ChipsetID:       "default",
		M2Slots:         2,
		SataConnectors:  4,
		MemorySlots:     4,
		ExpansionSlots:  3,
		PowerConnectors: 8,
	}

	DefaultCaseSpec = CasePhysicalSpec{
		CaseTypeID:      "default",
		FanMounts:       6,
		MaxGPULength:    330,
		MaxCoolerHeight: 165,
		MaxPSULength:    180,
	}
)
