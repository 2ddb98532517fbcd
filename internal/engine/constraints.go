package engine

import (
	"fmt"

	"rigforge/internal/model"
)

// ValidateConstraints compares usage against the derived limits and the
// build budget. Slot, connector and expansion overflow make the build
// physically impossible (error); fan-mount and budget overflow leave it
// buildable but suboptimal (warning). The returned order is fixed.
func ValidateConstraints(usage model.SlotUsage, limits model.PhysicalLimits, totalPrice, budget float64) []model.LimitViolation {
	violations := make([]model.LimitViolation, 0, 4)

	if usage.M2SlotsUsed > limits.MaxM2Slots {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationSlotOverflow,
			Severity: model.ViolationError,
			Message:  fmt.Sprintf("%d NVMe drives selected but the motherboard has %d M.2 slots", usage.M2SlotsUsed, limits.MaxM2Slots),
		})
	}

	if usage.SataConnectorsUsed > limits.MaxSataConnectors {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationSlotOverflow,
			Severity: model.ViolationError,
			Message:  fmt.Sprintf("%d SATA drives selected but the motherboard has %d SATA connectors", usage.SataConnectorsUsed, limits.MaxSataConnectors),
		})
	}

	if usage.MemorySlotsUsed > limits.MaxMemorySlots {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationSlotOverflow,
			Severity: model.ViolationError,
			Message:  fmt.Sprintf("%d memory modules selected but the motherboard has %d memory slots", usage.MemorySlotsUsed, limits.MaxMemorySlots),
		})
	}

	if usage.ExpansionSlotsUsed > limits.MaxExpansionSlots {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationSlotOverflow,
			Severity: model.ViolationError,
			Message:  fmt.Sprintf("%d expansion cards selected but the motherboard has %d expansion slots", usage.ExpansionSlotsUsed, limits.MaxExpansionSlots),
		})
	}

	if usage.PowerConnectorsUsed > limits.MaxPowerConnectors {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationPowerShortage,
			Severity: model.ViolationError,
			Message:  fmt.Sprintf("estimated %d power connectors needed but only %d available", usage.PowerConnectorsUsed, limits.MaxPowerConnectors),
		})
	}

	if usage.FanMountsUsed > limits.MaxFanMounts {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationPhysicalIncompatible,
			Severity: model.ViolationWarning,
			Message:  fmt.Sprintf("%d fans selected but the case has %d fan mounts", usage.FanMountsUsed, limits.MaxFanMounts),
		})
	}

	if budget > 0 && totalPrice > budget {
		violations = append(violations, model.LimitViolation{
			Type:     model.ViolationBudgetExceeded,
			Severity: model.ViolationWarning,
			Message:  fmt.Sprintf("total price %.2f exceeds budget %.2f", totalPrice, budget),
		})
	}

	return violations
}

// ConstraintsValid reports whether the build is physically possible: true
// iff no violation has error severity.
func ConstraintsValid(violations []model.LimitViolation) bool {
	for _, v := range violations {
		if v.Severity == model.ViolationError {
			return false
		}
	}
	return true
}
