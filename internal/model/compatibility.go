package model

// PhysicalLimits capacity ceilings derived from the selected motherboard and
// case. Recomputed whenever either changes, never mutated in place.
type PhysicalLimits struct {
	MaxM2Slots         int     `json:"maxM2Slots"`
	MaxSataConnectors  int     `json:"maxSataConnectors"`
	MaxMemorySlots     int     `json:"maxMemorySlots"`
	MaxFanMounts       int     `json:"maxFanMounts"`
	MaxExpansionSlots  int     `json:"maxExpansionSlots"`
	MaxPowerConnectors int     `json:"maxPowerConnectors"`
	MaxGPULength       float64 `json:"maxGpuLength"`       // mm
	MaxCoolerHeight    float64 `json:"maxCpuCoolerHeight"` // mm
	MaxPSULength       float64 `json:"maxPsuLength"`       // mm
}

// SlotUsage current consumption of the PhysicalLimits resources. Always
// fully recomputed from the configuration, never incrementally patched.
type SlotUsage struct {
	M2SlotsUsed         int `json:"m2SlotsUsed"`
	SataConnectorsUsed  int `json:"sataConnectorsUsed"`
	MemorySlotsUsed     int `json:"memorySlotsUsed"`
	FanMountsUsed       int `json:"fanMountsUsed"`
	ExpansionSlotsUsed  int `json:"expansionSlotsUsed"`
	PowerConnectorsUsed int `json:"powerConnectorsUsed"` // heuristic estimate
}

// IssueType compatibility issue type
type IssueType string

const (
	IssueSocketMismatch     IssueType = "socket_mismatch"
	IssueMemoryIncompatible IssueType = "memory_incompatible"
	IssuePowerInsufficient  IssueType = "power_insufficient"
	IssueSizeConflict       IssueType = "size_conflict"
	IssueConnectorMissing   IssueType = "connector_missing"
	IssueBottleneck         IssueType = "performance_bottleneck"
	IssueMissingPart        IssueType = "missing_part"
)

// IssueSeverity issue severity level
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical" // build will not work
	SeverityWarning  IssueSeverity = "warning"  // build works but is suboptimal
	SeverityInfo     IssueSeverity = "info"     // advisory, e.g. part not yet selected
)

// CompatibilityIssue a logical/electrical/physical incompatibility between
// specific parts, or a missing-part note.
type CompatibilityIssue struct {
	ID            string        `json:"id"`
	Type          IssueType     `json:"type"`
	Severity      IssueSeverity `json:"severity"`
	Message       string        `json:"message"`
	AffectedParts []string      `json:"affectedParts,omitempty"`
	Solution      string        `json:"solution,omitempty"`
	Category      string        `json:"category"` // which check produced it
}

// ViolationType limit violation type
type ViolationType string

const (
	ViolationSlotOverflow         ViolationType = "slot_overflow"
	ViolationPowerShortage        ViolationType = "power_shortage"
	ViolationPhysicalIncompatible ViolationType = "physical_incompatible"
	ViolationBudgetExceeded       ViolationType = "budget_exceeded"
)

// ViolationSeverity violation severity level
type ViolationSeverity string

const (
	ViolationError   ViolationSeverity = "error"   // build physically impossible
	ViolationWarning ViolationSeverity = "warning" // buildable but suboptimal
)

// LimitViolation a resource-capacity breach (usage exceeds limit).
type LimitViolation struct {
	Type     ViolationType     `json:"type"`
	Message  string            `json:"message"`
	Severity ViolationSeverity `json:"severity"`
}

// CheckDetail per-check breakdown entry in a CompatibilityResult.
type CheckDetail struct {
	Check   string `json:"check"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// CompatibilityResult the single report the engine produces for a
// configuration snapshot. This shape is the stable contract consumers
// depend on.
type CompatibilityResult struct {
	IsCompatible bool                 `json:"isCompatible"` // no critical issue
	IsValid      bool                 `json:"isValid"`      // no error-severity violation
	Issues       []CompatibilityIssue `json:"issues"`
	Warnings     []CompatibilityIssue `json:"warnings"`
	Violations   []LimitViolation     `json:"violations"`
	Score        int                  `json:"score"` // 0-100
	Details      []CheckDetail        `json:"details"`
}
