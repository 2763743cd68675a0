// Package store holds claims and their child records for the lifetime of the
// process. It is pure data access: enum domains and status transitions are the
// workflow engine's responsibility.
package store

import (
	"errors"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
)

// ErrNotFound is returned when a referenced claim does not exist
var ErrNotFound = errors.New("claim not found")

// Store is the entity store consumed by the workflow engine. Implementations
// must be safe for concurrent use; the HTTP host serves requests in parallel
// and batch operations read then write in multiple steps.
type Store interface {
	// Claims
	GetClaim(id string) (*entity.Claim, error)
	GetClaimByNumber(claimNumber string) (*entity.Claim, error)
	ListClaims() []*entity.Claim
	CreateClaim(claim *entity.Claim) *entity.Claim
	UpdateClaim(id string, patch *entity.ClaimPatch) (*entity.Claim, error)

	// Child records, retrieved by owning claim
	ListDamageItems(claimID string) []*entity.DamageItem
	CreateDamageItem(item *entity.DamageItem) *entity.DamageItem
	ListPhotos(claimID string) []*entity.Photo
	CreatePhoto(photo *entity.Photo) *entity.Photo
	ListCostLines(claimID string) []*entity.CostLine
	CreateCostLine(line *entity.CostLine) *entity.CostLine

	// Audit trail, append-only. ListAuditLog returns entries newest first.
	ListAuditLog(claimID string) []*entity.AuditLogEntry
	AppendAuditLog(auditEntry *entity.AuditLogEntry) *entity.AuditLogEntry

	// ResetToSeed replaces the entire store contents with the canonical
	// seed dataset. Nothing from the previous state survives.
	ResetToSeed()
}
