package model

import "fmt"

// CoreComponents holds the single-occupant build slots. A nil pointer means
// the slot is explicitly unselected, which downstream checks distinguish
// from an unknown specification.
type CoreComponents struct {
	CPU         *Part `json:"cpu"`
	Motherboard *Part `json:"motherboard"`
	Memory      *Part `json:"memory"` // base memory kit
	GPU         *Part `json:"gpu"`
	PSU         *Part `json:"psu"`
	Case        *Part `json:"case"`
	Cooler      *Part `json:"cooler"`
}

// AdditionalComponents holds the zero-or-many build slots. Ordering is
// insertion order and carries no meaning.
type AdditionalComponents struct {
	Storage     []*Part `json:"storage,omitempty"`
	Memory      []*Part `json:"memory,omitempty"` // extra memory kits
	Fans        []*Part `json:"fans,omitempty"`
	Monitors    []*Part `json:"monitors,omitempty"`
	Accessories []*Part `json:"accessories,omitempty"`
	Expansion   []*Part `json:"expansion,omitempty"`
}

// Configuration a build snapshot: the single source of truth the engine
// evaluates. Derived entities (limits, usage, results) are views over it.
type Configuration struct {
	ID         string               `json:"id,omitempty"`
	Name       string               `json:"name,omitempty"`
	Core       CoreComponents       `json:"core"`
	Additional AdditionalComponents `json:"additional"`
	Budget     float64              `json:"budget,omitempty"` // 0 = no budget set
}

// TotalPrice sums the price of every selected part.
func (c *Configuration) TotalPrice() float64 {
	var total float64
	for _, p := range c.AllParts() {
		total += p.Price
	}
	return total
}

// AllParts returns every selected part, core slots first.
func (c *Configuration) AllParts() []*Part {
	parts := make([]*Part, 0, 16)
	for _, p := range c.coreParts() {
		if p != nil {
			parts = append(parts, p)
		}
	}
	for _, group := range c.additionalGroups() {
		for _, p := range group {
			if p != nil {
				parts = append(parts, p)
			}
		}
	}
	return parts
}

func (c *Configuration) coreParts() []*Part {
	return []*Part{
		c.Core.CPU, c.Core.Motherboard, c.Core.Memory, c.Core.GPU,
		c.Core.PSU, c.Core.Case, c.Core.Cooler,
	}
}

func (c *Configuration) additionalGroups() [][]*Part {
	return [][]*Part{
		c.Additional.Storage, c.Additional.Memory, c.Additional.Fans,
		c.Additional.Monitors, c.Additional.Accessories, c.Additional.Expansion,
	}
}

// Validate checks the structural shape of the snapshot before evaluation.
// A malformed snapshot is a caller contract violation, not a finding:
// it is the only error path out of the engine.
func (c *Configuration) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is nil")
	}

	coreSlots := map[PartCategory]*Part{
		CategoryCPU:         c.Core.CPU,
		CategoryMotherboard: c.Core.Motherboard,
		CategoryMemory:      c.Core.Memory,
		CategoryGPU:         c.Core.GPU,
		CategoryPSU:         c.Core.PSU,
		CategoryCase:        c.Core.Case,
		CategoryCooler:      c.Core.Cooler,
	}
	for want, p := range coreSlots {
		if p == nil {
			continue
		}
		if p.Category != want {
			return fmt.Errorf("core slot %s holds a %s part (%s)", want, p.Category, p.ID)
		}
		if !p.specsMatchCategory() {
			return fmt.Errorf("part %s has specs for a different category than %s", p.ID, p.Category)
		}
	}

	additionalSlots := map[PartCategory][]*Part{
		CategoryStorage: c.Additional.Storage,
		CategoryMemory:  c.Additional.Memory,
		CategoryMonitor: c.Additional.Monitors,
	}
	for want, group := range additionalSlots {
		for _, p := range group {
			if p == nil {
				return fmt.Errorf("additional slot %s contains a nil part", want)
			}
			if p.Category != want {
				return fmt.Errorf("additional slot %s holds a %s part (%s)", want, p.Category, p.ID)
			}
			if !p.specsMatchCategory() {
				return fmt.Errorf("part %s has specs for a different category than %s", p.ID, p.Category)
			}
		}
	}

	// Fans, accessories and expansion cards carry free-form categories,
	// only nil entries are rejected.
	for _, group := range [][]*Part{c.Additional.Fans, c.Additional.Accessories, c.Additional.Expansion} {
		for _, p := range group {
			if p == nil {
				return fmt.Errorf("additional component list contains a nil part")
			}
		}
	}

	return nil
}
