package engine

import "rigforge/internal/model"

// Fixed penalties per finding severity.
const (
	penaltyCritical       = 30
	penaltyErrorViolation = 25
	penaltyWarning        = 10
	penaltyInfo           = 2
)

// Score reduces all findings to a single value in [0,100]. missing_part
// findings are exempt: a part that has not been selected yet is pending
// work, not a defect, so an empty configuration scores 100.
func Score(issues []model.CompatibilityIssue, violations []model.LimitViolation) int {
	score := 100

	for _, issue := range issues {
		if issue.Type == model.IssueMissingPart {
			continue
		}
		switch issue.Severity {
		case model.SeverityCritical:
			score -= penaltyCritical
		case model.SeverityWarning:
			score -= penaltyWarning
		case model.SeverityInfo:
			score -= penaltyInfo
		}
	}

	for _, v := range violations {
		switch v.Severity {
		case model.ViolationError:
			score -= penaltyErrorViolation
		case model.ViolationWarning:
			score -= penaltyWarning
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
