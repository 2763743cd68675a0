package entity

import "time"

// Action codes for AuditLogEntry
const (
	ActionClaimSubmitted      = "claim_submitted"
	ActionPhotosUploaded      = "photos_uploaded"
	ActionAIAnalysisCompleted = "ai_analysis_completed"
	ActionClaimUpdated        = "claim_updated"
	ActionClaimApproved       = "claim_approved"
	ActionClaimBatchApproved  = "claim_batch_approved"
	ActionClaimRejected       = "claim_rejected"
	ActionSentToShop          = "sent_to_shop"
)

// AuditLogEntry is one immutable record of an action taken on a claim.
// Entries are append-only; Seq increases monotonically per store so that
// entries with equal timestamps still order by the sequence of transitions.
type AuditLogEntry struct {
	ID          string        `json:"id"`
	ClaimID     string        `json:"claimId"`
	Action      string        `json:"action"`
	Description string        `json:"description"`
	PerformedBy string        `json:"performedBy"`
	Timestamp   time.Time     `json:"timestamp"`
	Seq         int64         `json:"-"`
	Metadata    AuditMetadata `json:"metadata"`
}

// AuditMetadata is the structured payload attached to an audit entry.
// Each action code has its own variant so payloads stay typed instead of
// the free-form key/value bag the upstream dashboard used.
type AuditMetadata interface {
	auditMetadata()
}

// ClaimApprovedMeta accompanies claim_approved entries
type ClaimApprovedMeta struct {
	Notes          string   `json:"notes"`
	EstimateAmount *float64 `json:"estimateAmount,omitempty"`
}

// ClaimRejectedMeta accompanies claim_rejected entries
type ClaimRejectedMeta struct {
	Reason string `json:"reason"`
}

// ClaimUpdatedMeta accompanies claim_updated entries
type ClaimUpdatedMeta struct {
	Updates map[string]interface{} `json:"updates"`
}

// BatchApprovedMeta accompanies claim_batch_approved entries
type BatchApprovedMeta struct {
	Confidence     string   `json:"confidence"`
	BatchSize      int      `json:"batchSize"`
	EstimateAmount *float64 `json:"estimateAmount,omitempty"`
}

// SentToShopMeta accompanies sent_to_shop entries
type SentToShopMeta struct {
	ShopID string `json:"shopId"`
	Notes  string `json:"notes"`
}

// ClaimSubmittedMeta accompanies claim_submitted entries
type ClaimSubmittedMeta struct{}

// PhotosUploadedMeta accompanies photos_uploaded entries
type PhotosUploadedMeta struct {
	PhotoCount    int  `json:"photoCount"`
	ProcessedByCV bool `json:"processedByCV"`
}

// AIAnalysisMeta accompanies ai_analysis_completed entries
type AIAnalysisMeta struct {
	Confidence      string `json:"confidence"`
	AreasIdentified int    `json:"areasIdentified"`
}

func (ClaimApprovedMeta) auditMetadata()  {}
func (ClaimRejectedMeta) auditMetadata()  {}
func (ClaimUpdatedMeta) auditMetadata()   {}
func (BatchApprovedMeta) auditMetadata()  {}
func (SentToShopMeta) auditMetadata()     {}
func (ClaimSubmittedMeta) auditMetadata() {}
func (PhotosUploadedMeta) auditMetadata() {}
func (AIAnalysisMeta) auditMetadata()     {}
