// Package engine implements the build constraint and compatibility engine.
// Every entry point is a pure function of a configuration snapshot and a
// read-only catalog: no shared mutable state, no I/O, safe for concurrent
// callers. Logical incompatibilities are the engine's designed output, not
// errors; the only error path is a structurally invalid snapshot.
package engine

import (
	"fmt"

	"rigforge/internal/catalog"
	"rigforge/internal/model"
)

// Evaluate is the single public entry point: it composes limit resolution,
// usage accounting, constraint validation, the compatibility checks and
// scoring into one CompatibilityResult for the given snapshot.
func Evaluate(cfg *model.Configuration, cat catalog.Lookup) (*model.CompatibilityResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	resolved := ResolveLimits(cfg.Core.Motherboard, cfg.Core.Case, cat)
	usage := AccountUsage(cfg)
	violations := ValidateConstraints(usage, resolved.Limits, cfg.TotalPrice(), cfg.Budget)

	var findings []model.CompatibilityIssue
	details := make([]model.CheckDetail, 0, 8)

	collect := func(issue *model.CompatibilityIssue, detail model.CheckDetail) {
		details = append(details, detail)
		if issue != nil {
			findings = append(findings, *issue)
		}
	}

	socketIssue, socketDetail := checkSocket(cfg.Core)
	collect(socketIssue, socketDetail)
	memIssue, memDetail := checkMemory(cfg.Core)
	collect(memIssue, memDetail)
	powerIssue, powerDetail := checkPower(cfg)
	collect(powerIssue, powerDetail)
	fitIssue, fitDetail := checkPhysicalFit(cfg.Core, resolved.Limits)
	collect(fitIssue, fitDetail)
	balanceIssue, balanceDetail := checkBalance(cfg.Core)
	collect(balanceIssue, balanceDetail)

	// Unknown catalog ids never fail resolution; they surface here as notes.
	if cfg.Core.Motherboard != nil && !resolved.MotherboardKnown {
		details = append(details, model.CheckDetail{
			Check:   "limits",
			Passed:  true,
			Message: "motherboard chipset unknown to the catalog, default limits applied",
		})
	}
	if cfg.Core.Case != nil && !resolved.CaseKnown {
		details = append(details, model.CheckDetail{
			Check:   "limits",
			Passed:  true,
			Message: "case type unknown to the catalog, default limits applied",
		})
	}

	issues := make([]model.CompatibilityIssue, 0, len(findings))
	warnings := make([]model.CompatibilityIssue, 0, len(findings))
	compatible := true
	for _, f := range findings {
		switch f.Severity {
		case model.SeverityCritical:
			compatible = false
			issues = append(issues, f)
		case model.SeverityWarning:
			warnings = append(warnings, f)
		default:
			issues = append(issues, f)
		}
	}

	return &model.CompatibilityResult{
		IsCompatible: compatible,
		IsValid:      ConstraintsValid(violations),
		Issues:       issues,
		Warnings:     warnings,
		Violations:   violations,
		Score:        Score(findings, violations),
		Details:      details,
	}, nil
}
