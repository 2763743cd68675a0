package entity

// Status constants for Claim
const (
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
	StatusSentToShop    = "sent_to_shop"
)

// Priority constants for Claim
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// AI confidence tier constants for Claim
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ValidConfidenceTier reports whether tier is a known AI confidence tier.
func ValidConfidenceTier(tier string) bool {
	switch tier {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// Severity constants for DamageItem
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Category constants for CostLine
const (
	CostCategoryLabor    = "labor"
	CostCategoryParts    = "parts"
	CostCategoryPaint    = "paint"
	CostCategorySupplies = "supplies"
	CostCategoryCustom   = "custom"
)
