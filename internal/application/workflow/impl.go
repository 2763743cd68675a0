package workflow

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
	domainwf "github.com/sabrina-lives/scale-claims-case-study/internal/domain/workflow"
	"github.com/sabrina-lives/scale-claims-case-study/internal/observability/metrics"
	"github.com/sabrina-lives/scale-claims-case-study/internal/store"
)

// engineImpl is the concrete implementation of Engine
type engineImpl struct {
	store   store.Store
	logger  *zap.Logger
	metrics *metrics.WorkflowMetrics
}

// EngineOption configures the workflow engine
type EngineOption func(*engineImpl)

// WithMetrics sets the Prometheus metrics recorded on each transition
func WithMetrics(m *metrics.WorkflowMetrics) EngineOption {
	return func(e *engineImpl) {
		e.metrics = m
	}
}

// NewEngine creates a new workflow engine over the given entity store
func NewEngine(st store.Store, logger *zap.Logger, opts ...EngineOption) Engine {
	e := &engineImpl{
		store:  st,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reads

func (e *engineImpl) GetClaim(ctx context.Context, claimID string) (*entity.Claim, error) {
	return e.store.GetClaim(claimID)
}

func (e *engineImpl) GetClaimByNumber(ctx context.Context, claimNumber string) (*entity.Claim, error) {
	return e.store.GetClaimByNumber(claimNumber)
}

func (e *engineImpl) ListClaims(ctx context.Context) []*entity.Claim {
	return e.store.ListClaims()
}

func (e *engineImpl) ListDamageItems(ctx context.Context, claimID string) []*entity.DamageItem {
	return e.store.ListDamageItems(claimID)
}

func (e *engineImpl) ListPhotos(ctx context.Context, claimID string) []*entity.Photo {
	return e.store.ListPhotos(claimID)
}

func (e *engineImpl) ListCostLines(ctx context.Context, claimID string) []*entity.CostLine {
	return e.store.ListCostLines(claimID)
}

func (e *engineImpl) ListAuditLog(ctx context.Context, claimID string) []*entity.AuditLogEntry {
	return e.store.ListAuditLog(claimID)
}

// Transitions

// Approve transitions a pending claim to approved and records the agent's
// notes. Re-approving an already-approved claim is a state conflict, not a
// no-op.
func (e *engineImpl) Approve(ctx context.Context, claimID, notes, actor string) (*entity.Claim, error) {
	claim, err := e.store.GetClaim(claimID)
	if err != nil {
		e.countError(entity.ActionClaimApproved, "not_found")
		return nil, err
	}

	nextState, err := e.fire(claim, domainwf.TriggerApprove)
	if err != nil {
		e.countError(entity.ActionClaimApproved, "state_conflict")
		return nil, err
	}

	status := nextState.String()
	updated, err := e.store.UpdateClaim(claimID, &entity.ClaimPatch{
		Status:     &status,
		AgentNotes: &notes,
	})
	if err != nil {
		return nil, err
	}

	e.store.AppendAuditLog(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionClaimApproved,
		Description: "Claim approved by agent",
		PerformedBy: actor,
		Metadata: entity.ClaimApprovedMeta{
			Notes:          notes,
			EstimateAmount: updated.TotalEstimate,
		},
	})

	e.countTransition(entity.ActionClaimApproved)
	e.logger.Info("Claim approved",
		zap.String("claim_id", claimID),
		zap.String("claim_number", updated.ClaimNumber),
		zap.String("actor", actor))

	return updated, nil
}

// Reject transitions a pending claim to rejected. The reason is mandatory:
// a blank reason mutates nothing and appends no audit entry.
func (e *engineImpl) Reject(ctx context.Context, claimID, reason, actor string) (*entity.Claim, error) {
	if strings.TrimSpace(reason) == "" {
		e.countError(entity.ActionClaimRejected, "validation")
		return nil, fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}

	claim, err := e.store.GetClaim(claimID)
	if err != nil {
		e.countError(entity.ActionClaimRejected, "not_found")
		return nil, err
	}

	nextState, err := e.fire(claim, domainwf.TriggerReject)
	if err != nil {
		e.countError(entity.ActionClaimRejected, "state_conflict")
		return nil, err
	}

	status := nextState.String()
	updated, err := e.store.UpdateClaim(claimID, &entity.ClaimPatch{
		Status:     &status,
		AgentNotes: &reason,
	})
	if err != nil {
		return nil, err
	}

	e.store.AppendAuditLog(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionClaimRejected,
		Description: "Claim rejected by agent",
		PerformedBy: actor,
		Metadata:    entity.ClaimRejectedMeta{Reason: reason},
	})

	e.countTransition(entity.ActionClaimRejected)
	e.logger.Info("Claim rejected",
		zap.String("claim_id", claimID),
		zap.String("claim_number", updated.ClaimNumber),
		zap.String("actor", actor))

	return updated, nil
}

// SendToShop routes an approved claim to a repair shop
func (e *engineImpl) SendToShop(ctx context.Context, claimID, shopID, notes, actor string) (*entity.Claim, error) {
	if strings.TrimSpace(shopID) == "" {
		e.countError(entity.ActionSentToShop, "validation")
		return nil, fmt.Errorf("%w: shop id is required", ErrValidation)
	}

	claim, err := e.store.GetClaim(claimID)
	if err != nil {
		e.countError(entity.ActionSentToShop, "not_found")
		return nil, err
	}

	nextState, err := e.fire(claim, domainwf.TriggerSendToShop)
	if err != nil {
		e.countError(entity.ActionSentToShop, "state_conflict")
		return nil, err
	}

	status := nextState.String()
	updated, err := e.store.UpdateClaim(claimID, &entity.ClaimPatch{
		Status:         &status,
		AssignedShopID: &shopID,
		AdjusterNotes:  &notes,
	})
	if err != nil {
		return nil, err
	}

	e.store.AppendAuditLog(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionSentToShop,
		Description: fmt.Sprintf("Claim sent to repair shop (ID: %s)", shopID),
		PerformedBy: actor,
		Metadata:    entity.SentToShopMeta{ShopID: shopID, Notes: notes},
	})

	e.countTransition(entity.ActionSentToShop)
	e.logger.Info("Claim sent to shop",
		zap.String("claim_id", claimID),
		zap.String("claim_number", updated.ClaimNumber),
		zap.String("shop_id", shopID),
		zap.String("actor", actor))

	return updated, nil
}

// UpdateFields merges a field patch into the claim and records a
// claim_updated audit entry. Status changes are not permitted here; they
// belong to the transition operations.
func (e *engineImpl) UpdateFields(ctx context.Context, claimID string, patch *entity.ClaimPatch, actor string) (*entity.Claim, error) {
	if patch == nil || patch.IsZero() {
		e.countError(entity.ActionClaimUpdated, "validation")
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if patch.Status != nil {
		e.countError(entity.ActionClaimUpdated, "validation")
		return nil, fmt.Errorf("%w: status cannot be changed through field updates", ErrValidation)
	}

	updated, err := e.store.UpdateClaim(claimID, patch)
	if err != nil {
		e.countError(entity.ActionClaimUpdated, "not_found")
		return nil, err
	}

	e.store.AppendAuditLog(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionClaimUpdated,
		Description: "Claim updated by agent",
		PerformedBy: actor,
		Metadata:    entity.ClaimUpdatedMeta{Updates: patch.Fields()},
	})

	e.countTransition(entity.ActionClaimUpdated)
	e.logger.Info("Claim updated",
		zap.String("claim_id", claimID),
		zap.String("claim_number", updated.ClaimNumber),
		zap.String("actor", actor))

	return updated, nil
}

// BatchApprove approves every pending claim in the given confidence tier.
// Claims are processed independently in the store's enumeration order; a
// failure on one claim is recorded and does not abort the rest. Zero matching
// candidates is a success with an empty result.
func (e *engineImpl) BatchApprove(ctx context.Context, confidence, actor string) (*BatchResult, error) {
	if !entity.ValidConfidenceTier(confidence) {
		e.countError(entity.ActionClaimBatchApproved, "validation")
		return nil, fmt.Errorf("%w: unknown confidence tier %q", ErrValidation, confidence)
	}

	var candidates []*entity.Claim
	for _, claim := range e.store.ListClaims() {
		if claim.Status == entity.StatusPendingReview &&
			claim.AIConfidence != nil && *claim.AIConfidence == confidence {
			candidates = append(candidates, claim)
		}
	}

	note := fmt.Sprintf("Auto-approved via batch approval for %s confidence claims", confidence)
	batchSize := len(candidates)

	result := &BatchResult{
		Confidence: confidence,
		Claims:     []*entity.Claim{},
	}

	for _, claim := range candidates {
		nextState, err := e.fire(claim, domainwf.TriggerApprove)
		if err != nil {
			result.Failures = append(result.Failures, BatchFailure{ClaimID: claim.ID, Reason: err.Error()})
			e.countError(entity.ActionClaimBatchApproved, "state_conflict")
			continue
		}

		status := nextState.String()
		updated, err := e.store.UpdateClaim(claim.ID, &entity.ClaimPatch{
			Status:     &status,
			AgentNotes: &note,
		})
		if err != nil {
			result.Failures = append(result.Failures, BatchFailure{ClaimID: claim.ID, Reason: err.Error()})
			e.countError(entity.ActionClaimBatchApproved, "not_found")
			continue
		}

		e.store.AppendAuditLog(&entity.AuditLogEntry{
			ClaimID:     claim.ID,
			Action:      entity.ActionClaimBatchApproved,
			Description: fmt.Sprintf("Claim batch-approved for %s confidence", confidence),
			PerformedBy: actor,
			Metadata: entity.BatchApprovedMeta{
				Confidence:     confidence,
				BatchSize:      batchSize,
				EstimateAmount: updated.TotalEstimate,
			},
		})

		result.Claims = append(result.Claims, updated)
		result.Approved++
		e.countTransition(entity.ActionClaimBatchApproved)
		if e.metrics != nil {
			e.metrics.BatchApproved.Inc()
		}
	}

	e.logger.Info("Batch approval completed",
		zap.String("confidence", confidence),
		zap.Int("candidates", batchSize),
		zap.Int("approved", result.Approved),
		zap.Int("failed", len(result.Failures)),
		zap.String("actor", actor))

	return result, nil
}

// ResetDemoData restores the store to the canonical seed dataset. Audit
// entries do not survive; the store contents are replaced wholesale.
func (e *engineImpl) ResetDemoData(ctx context.Context, actor string) error {
	e.store.ResetToSeed()
	e.logger.Info("Demo data reset to seed state", zap.String("actor", actor))
	return nil
}

// fire validates the claim's current status and runs the trigger through the
// claim state machine, returning the resulting state.
func (e *engineImpl) fire(claim *entity.Claim, trigger domainwf.Trigger) (domainwf.State, error) {
	currentState := domainwf.State(claim.Status)
	if !currentState.IsValid() {
		return "", fmt.Errorf("%w: claim %s has unknown status %q", domainwf.ErrInvalidState, claim.ID, claim.Status)
	}

	machine := BuildClaimStateMachine(currentState)
	if err := machine.Fire(trigger); err != nil {
		return "", fmt.Errorf("%w: %s not permitted for claim in status %q", ErrStateConflict, trigger, claim.Status)
	}

	return machine.State(), nil
}

func (e *engineImpl) countTransition(action string) {
	if e.metrics != nil {
		e.metrics.TransitionsTotal.WithLabelValues(action).Inc()
	}
}

func (e *engineImpl) countError(action, reason string) {
	if e.metrics != nil {
		e.metrics.TransitionErrors.WithLabelValues(action, reason).Inc()
	}
}
