// Package workflow implements the claim status workflow engine. It owns every
// status transition and guarantees each successful transition is paired with
// exactly one audit entry.
package workflow

import (
	"context"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
)

// Engine is the workflow engine consumed by the API gateway. Write operations
// take an explicit actor identity; the gateway sources it from the session
// layer rather than hardcoding reviewer names.
type Engine interface {
	// Reads
	GetClaim(ctx context.Context, claimID string) (*entity.Claim, error)
	GetClaimByNumber(ctx context.Context, claimNumber string) (*entity.Claim, error)
	ListClaims(ctx context.Context) []*entity.Claim
	ListDamageItems(ctx context.Context, claimID string) []*entity.DamageItem
	ListPhotos(ctx context.Context, claimID string) []*entity.Photo
	ListCostLines(ctx context.Context, claimID string) []*entity.CostLine
	ListAuditLog(ctx context.Context, claimID string) []*entity.AuditLogEntry

	// Transitions
	Approve(ctx context.Context, claimID, notes, actor string) (*entity.Claim, error)
	Reject(ctx context.Context, claimID, reason, actor string) (*entity.Claim, error)
	SendToShop(ctx context.Context, claimID, shopID, notes, actor string) (*entity.Claim, error)

	// UpdateFields patches claim fields without transitioning status.
	UpdateFields(ctx context.Context, claimID string, patch *entity.ClaimPatch, actor string) (*entity.Claim, error)

	// BatchApprove applies the approve transition to every pending claim in
	// the given AI confidence tier. Per-claim failures are recorded in the
	// result and do not abort the batch.
	BatchApprove(ctx context.Context, confidence, actor string) (*BatchResult, error)

	// ResetDemoData restores the entity store to its seed state.
	ResetDemoData(ctx context.Context, actor string) error
}

// BatchResult reports the outcome of a batch approval.
type BatchResult struct {
	Approved   int             `json:"approvedClaims"`
	Confidence string          `json:"confidence"`
	Claims     []*entity.Claim `json:"claims"`
	Failures   []BatchFailure  `json:"failures,omitempty"`
}

// BatchFailure records a claim the batch attempted but could not approve.
type BatchFailure struct {
	ClaimID string `json:"claimId"`
	Reason  string `json:"reason"`
}
