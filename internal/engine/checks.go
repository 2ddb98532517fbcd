package engine

import (
	"fmt"
	"strings"

	"rigforge/internal/model"

	"github.com/google/uuid"
)

const (
	// systemBaselineDraw covers the parts the model does not itemize
	// (board peripherals, fans, drives spinning up), in watts.
	systemBaselineDraw = 50.0

	// psuHeadroom is the recommended wattage margin over estimated draw.
	psuHeadroom = 1.2
)

// defaultDraw per-category fallback power draw in watts, used when a part
// does not declare powerConsumption.
var defaultDraw = map[model.PartCategory]float64{
	model.CategoryCPU:         125,
	model.CategoryMotherboard: 80,
	model.CategoryMemory:      5,
	model.CategoryStorage:     10,
	model.CategoryGPU:         250,
	model.CategoryCooler:      5,
}

// tierRank orders the performance tiers used by the balance check.
// Unknown tiers rank 0 and are skipped.
var tierRank = map[string]int{
	"entry":      1,
	"mainstream": 2,
	"high":       3,
	"enthusiast": 4,
}

func newIssue(t model.IssueType, sev model.IssueSeverity, category, message, solution string, parts ...string) *model.CompatibilityIssue {
	return &model.CompatibilityIssue{
		ID:            uuid.New().String(),
		Type:          t,
		Severity:      sev,
		Message:       message,
		Solution:      solution,
		Category:      category,
		AffectedParts: parts,
	}
}

func missingPartIssue(category, message string) *model.CompatibilityIssue {
	return newIssue(model.IssueMissingPart, model.SeverityInfo, category, message, "")
}

// checkSocket flags a CPU whose socket does not match the motherboard's.
func checkSocket(core model.CoreComponents) (*model.CompatibilityIssue, model.CheckDetail) {
	detail := model.CheckDetail{Check: "socket", Passed: true}

	if core.CPU == nil || core.Motherboard == nil {
		detail.Message = "CPU or motherboard not yet selected"
		return missingPartIssue("socket", detail.Message), detail
	}

	cpuSocket := ""
	if core.CPU.Specs.CPU != nil {
		cpuSocket = core.CPU.Specs.CPU.Socket
	}
	mbSocket := ""
	if core.Motherboard.Specs.Motherboard != nil {
		mbSocket = core.Motherboard.Specs.Motherboard.Socket
	}
	if cpuSocket == "" || mbSocket == "" {
		detail.Message = "socket specification missing, check skipped"
		return nil, detail
	}

	if !strings.EqualFold(cpuSocket, mbSocket) {
		detail.Passed = false
		detail.Message = fmt.Sprintf("CPU socket %s does not fit motherboard socket %s", cpuSocket, mbSocket)
		issue := newIssue(model.IssueSocketMismatch, model.SeverityCritical, "socket",
			detail.Message,
			fmt.Sprintf("choose a motherboard with socket %s or a CPU with socket %s", cpuSocket, mbSocket),
			core.CPU.ID, core.Motherboard.ID)
		return issue, detail
	}

	detail.Message = fmt.Sprintf("socket %s matches", cpuSocket)
	return nil, detail
}

// checkMemory flags memory whose standard the motherboard does not support.
func checkMemory(core model.CoreComponents) (*model.CompatibilityIssue, model.CheckDetail) {
	detail := model.CheckDetail{Check: "memory", Passed: true}

	if core.Memory == nil || core.Motherboard == nil {
		detail.Message = "memory or motherboard not yet selected"
		return missingPartIssue("memory", detail.Message), detail
	}

	memType := ""
	if core.Memory.Specs.Memory != nil {
		memType = core.Memory.Specs.Memory.Type
	}
	var supported []string
	if core.Motherboard.Specs.Motherboard != nil {
		supported = core.Motherboard.Specs.Motherboard.MemoryTypes
	}
	if memType == "" || len(supported) == 0 {
		detail.Message = "memory type specification missing, check skipped"
		return nil, detail
	}

	for _, t := range supported {
		if strings.EqualFold(t, memType) {
			detail.Message = fmt.Sprintf("memory type %s supported", memType)
			return nil, detail
		}
	}

	detail.Passed = false
	detail.Message = fmt.Sprintf("memory type %s not supported by the motherboard (supports %s)", memType, strings.Join(supported, ", "))
	issue := newIssue(model.IssueMemoryIncompatible, model.SeverityCritical, "memory",
		detail.Message,
		fmt.Sprintf("choose %s memory", strings.Join(supported, " or ")),
		core.Memory.ID, core.Motherboard.ID)
	return issue, detail
}

// checkPower compares the PSU wattage against the estimated total draw.
// Wattage below the draw is critical; wattage below draw plus the
// recommended headroom is a warning.
func checkPower(cfg *model.Configuration) (*model.CompatibilityIssue, model.CheckDetail) {
	detail := model.CheckDetail{Check: "power", Passed: true}

	if cfg.Core.PSU == nil {
		detail.Message = "power supply not yet selected"
		return missingPartIssue("power", detail.Message), detail
	}

	wattage := 0.0
	if cfg.Core.PSU.Specs.PSU != nil {
		wattage = cfg.Core.PSU.Specs.PSU.Wattage
	}
	if wattage <= 0 {
		detail.Message = "PSU wattage specification missing, check skipped"
		return nil, detail
	}

	draw := EstimateDraw(cfg)
	switch {
	case wattage < draw:
		detail.Passed = false
		detail.Message = fmt.Sprintf("PSU delivers %.0fW but the build draws an estimated %.0fW", wattage, draw)
		issue := newIssue(model.IssuePowerInsufficient, model.SeverityCritical, "power",
			detail.Message,
			fmt.Sprintf("choose a PSU rated for at least %.0fW", draw*psuHeadroom),
			cfg.Core.PSU.ID)
		return issue, detail
	case wattage < draw*psuHeadroom:
		detail.Message = fmt.Sprintf("PSU delivers %.0fW, below the recommended %.0f%% margin over the estimated %.0fW draw", wattage, (psuHeadroom-1)*100, draw)
		issue := newIssue(model.IssuePowerInsufficient, model.SeverityWarning, "power",
			detail.Message,
			fmt.Sprintf("a PSU rated for %.0fW or more leaves headroom for load spikes", draw*psuHeadroom),
			cfg.Core.PSU.ID)
		return issue, detail
	}

	detail.Message = fmt.Sprintf("PSU delivers %.0fW against an estimated %.0fW draw", wattage, draw)
	return nil, detail
}

// EstimateDraw sums each selected part's declared power consumption, or its
// category default, plus the fixed system baseline. The PSU itself and
// zero-draw categories (case, monitors) contribute nothing.
func EstimateDraw(cfg *model.Configuration) float64 {
	draw := systemBaselineDraw
	for _, p := range cfg.AllParts() {
		draw += partDraw(p)
	}
	return draw
}

func partDraw(p *model.Part) float64 {
	var declared float64
	switch {
	case p.Specs.CPU != nil:
		declared = p.Specs.CPU.PowerConsumption
	case p.Specs.Motherboard != nil:
		declared = p.Specs.Motherboard.PowerConsumption
	case p.Specs.Memory != nil:
		declared = p.Specs.Memory.PowerConsumption
	case p.Specs.Storage != nil:
		declared = p.Specs.Storage.PowerConsumption
	case p.Specs.GPU != nil:
		declared = p.Specs.GPU.PowerConsumption
	case p.Specs.Cooler != nil:
		declared = p.Specs.Cooler.PowerConsumption
	}
	if declared > 0 {
		return declared
	}
	return defaultDraw[p.Category]
}

// checkPhysicalFit flags parts that do not fit the case clearances. Each
// comparison runs only when both operands are present.
func checkPhysicalFit(core model.CoreComponents, limits model.PhysicalLimits) (*model.CompatibilityIssue, model.CheckDetail) {
	detail := model.CheckDetail{Check: "physical_fit", Passed: true}

	if core.Case == nil {
		detail.Message = "case not yet selected"
		return missingPartIssue("physical_fit", detail.Message), detail
	}

	var conflicts []string
	var affected []string

	if core.GPU != nil && core.GPU.Specs.GPU != nil && core.GPU.Specs.GPU.Length > 0 &&
		limits.MaxGPULength > 0 && core.GPU.Specs.GPU.Length > limits.MaxGPULength {
		conflicts = append(conflicts, fmt.Sprintf("GPU is %.0fmm long but the case fits %.0fmm", core.GPU.Specs.GPU.Length, limits.MaxGPULength))
		affected = append(affected, core.GPU.ID)
	}
	if core.Cooler != nil && core.Cooler.Specs.Cooler != nil && core.Cooler.Specs.Cooler.Height > 0 &&
		limits.MaxCoolerHeight > 0 && core.Cooler.Specs.Cooler.Height > limits.MaxCoolerHeight {
		conflicts = append(conflicts, fmt.Sprintf("cooler is %.0fmm tall but the case fits %.0fmm", core.Cooler.Specs.Cooler.Height, limits.MaxCoolerHeight))
		affected = append(affected, core.Cooler.ID)
	}
	if core.PSU != nil && core.PSU.Specs.PSU != nil && core.PSU.Specs.PSU.Length > 0 &&
		limits.MaxPSULength > 0 && core.PSU.Specs.PSU.Length > limits.MaxPSULength {
		conflicts = append(conflicts, fmt.Sprintf("PSU is %.0fmm long but the case fits %.0fmm", core.PSU.Specs.PSU.Length, limits.MaxPSULength))
		affected = append(affected, core.PSU.ID)
	}

	if len(conflicts) > 0 {
		detail.Passed = false
		detail.Message = strings.Join(conflicts, "; ")
		affected = append(affected, core.Case.ID)
		issue := newIssue(model.IssueSizeConflict, model.SeverityCritical, "physical_fit",
			detail.Message,
			"choose a larger case or smaller components",
			affected...)
		return issue, detail
	}

	detail.Message = "all components fit the case"
	return nil, detail
}

// checkBalance compares CPU and GPU performance tiers and flags a likely
// bottleneck. Advisory only: it never escalates past warning.
func checkBalance(core model.CoreComponents) (*model.CompatibilityIssue, model.CheckDetail) {
	detail := model.CheckDetail{Check: "balance", Passed: true}

	if core.CPU == nil || core.GPU == nil {
		detail.Message = "CPU or GPU not yet selected"
		return missingPartIssue("balance", detail.Message), detail
	}

	cpuRank := 0
	if core.CPU.Specs.CPU != nil {
		cpuRank = tierRank[strings.ToLower(core.CPU.Specs.CPU.Tier)]
	}
	gpuRank := 0
	if core.GPU.Specs.GPU != nil {
		gpuRank = tierRank[strings.ToLower(core.GPU.Specs.GPU.Tier)]
	}
	if cpuRank == 0 || gpuRank == 0 {
		detail.Message = "performance tier unknown, check skipped"
		return nil, detail
	}

	gap := cpuRank - gpuRank
	if gap < 0 {
		gap = -gap
	}
	if gap >= 2 {
		slower, faster := "CPU", "GPU"
		if cpuRank > gpuRank {
			slower, faster = "GPU", "CPU"
		}
		detail.Passed = false
		detail.Message = fmt.Sprintf("the %s is likely to bottleneck the %s", slower, faster)
		issue := newIssue(model.IssueBottleneck, model.SeverityWarning, "balance",
			detail.Message,
			fmt.Sprintf("pair the %s with a higher-tier %s", faster, slower),
			core.CPU.ID, core.GPU.ID)
		return issue, detail
	}

	detail.Message = "CPU and GPU tiers are balanced"
	return nil, detail
}
