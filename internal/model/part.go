package model

// PartCategory part category
type PartCategory string

const (
	CategoryCPU         PartCategory = "cpu"
	CategoryMotherboard PartCategory = "motherboard"
	CategoryMemory      PartCategory = "memory"
	CategoryStorage     PartCategory = "storage"
	CategoryGPU         PartCategory = "gpu"
	CategoryPSU         PartCategory = "psu"
	CategoryCase        PartCategory = "case"
	CategoryCooler      PartCategory = "cooler"
	CategoryMonitor     PartCategory = "monitor"
	CategoryOther       PartCategory = "other"
)

// Valid reports whether the category is one of the known categories.
func (c PartCategory) Valid() bool {
	switch c {
	case CategoryCPU, CategoryMotherboard, CategoryMemory, CategoryStorage,
		CategoryGPU, CategoryPSU, CategoryCase, CategoryCooler,
		CategoryMonitor, CategoryOther:
		return true
	}
	return false
}

// Part a catalog part referenced by a build configuration.
// Specs are read-only once the part is referenced by a configuration.
type Part struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Manufacturer string       `json:"manufacturer"`
	Price        float64      `json:"price"`
	Category     PartCategory `json:"category"`
	Specs        PartSpecs    `json:"specs"`
}

// PartSpecs is a per-category variant: exactly the section matching the
// part's category is populated. Unknown vendor fields pass through Extra
// untouched for forward compatibility.
type PartSpecs struct {
	CPU         *CPUSpecs         `json:"cpu,omitempty"`
	Motherboard *MotherboardSpecs `json:"motherboard,omitempty"`
	Memory      *MemorySpecs      `json:"memory,omitempty"`
	Storage     *StorageSpecs     `json:"storage,omitempty"`
	GPU         *GPUSpecs         `json:"gpu,omitempty"`
	PSU         *PSUSpecs         `json:"psu,omitempty"`
	Case        *CaseSpecs        `json:"case,omitempty"`
	Cooler      *CoolerSpecs      `json:"cooler,omitempty"`

	Extra map[string]string `json:"extra,omitempty"`
}

// CPUSpecs CPU specification fields used by the compatibility checks
type CPUSpecs struct {
	Socket           string  `json:"socket"`                     // e.g. AM5, LGA1700
	Cores            int     `json:"cores,omitempty"`
	PowerConsumption float64 `json:"powerConsumption,omitempty"` // watts, 0 = unknown
	Tier             string  `json:"tier,omitempty"`             // entry, mainstream, high, enthusiast
}

// MotherboardSpecs motherboard specification fields
type MotherboardSpecs struct {
	Socket           string   `json:"socket"`
	Chipset          string   `json:"chipset"`               // catalog chipset id, e.g. B650, Z790
	MemoryTypes      []string `json:"memoryTypes,omitempty"` // supported memory standards
	PowerConsumption float64  `json:"powerConsumption,omitempty"`
}

// MemorySpecs memory module specification fields
type MemorySpecs struct {
	Type             string  `json:"type"` // DDR4, DDR5
	CapacityGB       int     `json:"capacityGB,omitempty"`
	PowerConsumption float64 `json:"powerConsumption,omitempty"`
}

// StorageSpecs storage specification fields
type StorageSpecs struct {
	Interface        string  `json:"interface,omitempty"` // NVMe, SATA, SATA3; empty = unknown
	CapacityGB       int     `json:"capacityGB,omitempty"`
	PowerConsumption float64 `json:"powerConsumption,omitempty"`
}

// GPUSpecs graphics card specification fields
type GPUSpecs struct {
	Length           float64 `json:"length,omitempty"` // mm, 0 = unknown
	PowerConsumption float64 `json:"powerConsumption,omitempty"`
	Tier             string  `json:"tier,omitempty"`
}

// PSUSpecs power supply specification fields
type PSUSpecs struct {
	Wattage float64 `json:"wattage"`
	Length  float64 `json:"length,omitempty"` // mm, 0 = unknown
}

// CaseSpecs case specification fields
type CaseSpecs struct {
	CaseType string `json:"caseType"` // catalog case type id, e.g. mid-tower
}

// CoolerSpecs CPU cooler specification fields
type CoolerSpecs struct {
	Height           float64 `json:"height,omitempty"` // mm, 0 = unknown
	PowerConsumption float64 `json:"powerConsumption,omitempty"`
}

// specsMatchCategory reports whether the populated specs section matches the
// part category. Parts without a typed section are allowed (data-quality
// issues degrade to info findings, they are never fatal).
func (p *Part) specsMatchCategory() bool {
	s := p.Specs
	sections := map[PartCategory]bool{
		CategoryCPU:         s.CPU != nil,
		CategoryMotherboard: s.Motherboard != nil,
		CategoryMemory:      s.Memory != nil,
		CategoryStorage:     s.Storage != nil,
		CategoryGPU:         s.GPU != nil,
		CategoryPSU:         s.PSU != nil,
		CategoryCase:        s.Case != nil,
		CategoryCooler:      s.Cooler != nil,
	}
	for cat, populated := range sections {
		if populated && cat != p.Category {
			return false
		}
	}
	return true
}
