package engine

import (
	"strings"

	"rigforge/internal/model"
)

// AccountUsage recomputes slot and connector consumption from scratch for
// the given snapshot. There is no carried state: full recomputation on every
// call keeps usage from drifting away from the configuration that produced
// it.
func AccountUsage(cfg *model.Configuration) model.SlotUsage {
	var usage model.SlotUsage

	for _, p := range cfg.Additional.Storage {
		switch storageInterface(p) {
		case "nvme":
			usage.M2SlotsUsed++
		case "sata", "sata3":
			usage.SataConnectorsUsed++
		default:
			// Interface-less storage counts toward neither bus. Known to
			// under-count; true accounting needs per-part connector specs.
		}
	}

	if cfg.Core.Memory != nil {
		usage.MemorySlotsUsed++
	}
	usage.MemorySlotsUsed += len(cfg.Additional.Memory)

	usage.FanMountsUsed = len(cfg.Additional.Fans)
	usage.ExpansionSlotsUsed = len(cfg.Additional.Expansion)

	// Heuristic connector estimate, not physical truth: the data model has
	// no per-part connector specs to count from.
	if cfg.Core.CPU != nil {
		usage.PowerConnectorsUsed++
	}
	if cfg.Core.GPU != nil {
		usage.PowerConnectorsUsed += 2
	}
	usage.PowerConnectorsUsed += len(cfg.Additional.Expansion)

	return usage
}

func storageInterface(p *model.Part) string {
	if p == nil || p.Specs.Storage == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(p.Specs.Storage.Interface))
}
