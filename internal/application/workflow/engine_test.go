package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
	"github.com/sabrina-lives/scale-claims-case-study/internal/store"
)

func newTestEngine(t *testing.T) (Engine, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	return NewEngine(st, zap.NewNop()), st
}

func seedClaim(st *store.MemStore, number, status string, confidence *string) *entity.Claim {
	estimate := 2847.00
	return st.CreateClaim(&entity.Claim{
		ClaimNumber:         number,
		PolicyholderName:    "Test Holder",
		VehicleInfo:         "2022 Toyota Camry",
		VIN:                 "VIN123",
		IncidentDate:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		IncidentDescription: "Parking lot collision",
		Status:              status,
		Priority:            entity.PriorityHigh,
		AIConfidence:        confidence,
		TotalEstimate:       &estimate,
	})
}

func confidencePtr(tier string) *string { return &tier }

func TestEngine_Approve(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	updated, err := engine.Approve(context.Background(), claim.ID, "looks good", "Sarah Johnson")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusApproved, updated.Status)
	require.NotNil(t, updated.AgentNotes)
	assert.Equal(t, "looks good", *updated.AgentNotes)

	entries := st.ListAuditLog(claim.ID)
	require.Len(t, entries, 1, "exactly one audit entry per transition")
	assert.Equal(t, entity.ActionClaimApproved, entries[0].Action)
	assert.Equal(t, claim.ID, entries[0].ClaimID)
	assert.Equal(t, "Sarah Johnson", entries[0].PerformedBy)

	meta, ok := entries[0].Metadata.(entity.ClaimApprovedMeta)
	require.True(t, ok, "metadata carries the claim_approved payload")
	assert.Equal(t, "looks good", meta.Notes)
	require.NotNil(t, meta.EstimateAmount)
	assert.Equal(t, 2847.00, *meta.EstimateAmount)
}

func TestEngine_Approve_NotFound(t *testing.T) {
	engine, st := newTestEngine(t)

	_, err := engine.Approve(context.Background(), "no-such-claim", "notes", "agent")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, st.ListAuditLog("no-such-claim"), "failed operations append nothing")
}

func TestEngine_Approve_AlreadyApproved(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusApproved, nil)

	_, err := engine.Approve(context.Background(), claim.ID, "again", "agent")
	assert.ErrorIs(t, err, ErrStateConflict)

	got, getErr := st.GetClaim(claim.ID)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusApproved, got.Status)
	assert.Empty(t, st.ListAuditLog(claim.ID))
}

func TestEngine_Approve_TerminalStates(t *testing.T) {
	for _, status := range []string{entity.StatusRejected, entity.StatusSentToShop} {
		t.Run(status, func(t *testing.T) {
			engine, st := newTestEngine(t)
			claim := seedClaim(st, "CLM-TEST-1", status, nil)

			_, err := engine.Approve(context.Background(), claim.ID, "notes", "agent")
			assert.ErrorIs(t, err, ErrStateConflict)

			got, getErr := st.GetClaim(claim.ID)
			require.NoError(t, getErr)
			assert.Equal(t, status, got.Status, "terminal states never change")
		})
	}
}

func TestEngine_Reject(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	updated, err := engine.Reject(context.Background(), claim.ID, "insufficient photos", "Sarah Johnson")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusRejected, updated.Status)
	require.NotNil(t, updated.AgentNotes)
	assert.Equal(t, "insufficient photos", *updated.AgentNotes)

	entries := st.ListAuditLog(claim.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionClaimRejected, entries[0].Action)

	meta, ok := entries[0].Metadata.(entity.ClaimRejectedMeta)
	require.True(t, ok)
	assert.Equal(t, "insufficient photos", meta.Reason)
}

func TestEngine_Reject_BlankReason(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, st := newTestEngine(t)
			claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

			_, err := engine.Reject(context.Background(), claim.ID, tt.reason, "agent")
			assert.ErrorIs(t, err, ErrValidation)

			got, getErr := st.GetClaim(claim.ID)
			require.NoError(t, getErr)
			assert.Equal(t, entity.StatusPendingReview, got.Status, "blank reason never mutates state")
			assert.Nil(t, got.AgentNotes)
			assert.Empty(t, st.ListAuditLog(claim.ID), "blank reason never appends an audit entry")
		})
	}
}

func TestEngine_SendToShop(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-2", entity.StatusApproved, nil)

	updated, err := engine.SendToShop(context.Background(), claim.ID, "shop-1", "rush job", "Michael Chen")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSentToShop, updated.Status)
	require.NotNil(t, updated.AssignedShopID)
	assert.Equal(t, "shop-1", *updated.AssignedShopID)
	require.NotNil(t, updated.AdjusterNotes)
	assert.Equal(t, "rush job", *updated.AdjusterNotes)

	entries := st.ListAuditLog(claim.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionSentToShop, entries[0].Action)
	assert.Equal(t, "Michael Chen", entries[0].PerformedBy)

	meta, ok := entries[0].Metadata.(entity.SentToShopMeta)
	require.True(t, ok)
	assert.Equal(t, "shop-1", meta.ShopID)
	assert.Equal(t, "rush job", meta.Notes)
}

func TestEngine_SendToShop_RequiresApprovedStatus(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	_, err := engine.SendToShop(context.Background(), claim.ID, "shop-1", "notes", "adjuster")
	assert.ErrorIs(t, err, ErrStateConflict)

	got, getErr := st.GetClaim(claim.ID)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusPendingReview, got.Status)
	assert.Nil(t, got.AssignedShopID)
}

func TestEngine_SendToShop_BlankShopID(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-2", entity.StatusApproved, nil)

	_, err := engine.SendToShop(context.Background(), claim.ID, "  ", "notes", "adjuster")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, st.ListAuditLog(claim.ID))
}

func TestEngine_UpdateFields(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	priority := entity.PriorityLow
	estimate := 3100.00
	updated, err := engine.UpdateFields(context.Background(), claim.ID, &entity.ClaimPatch{
		Priority:      &priority,
		TotalEstimate: &estimate,
	}, "Sarah Johnson")
	require.NoError(t, err)

	assert.Equal(t, entity.PriorityLow, updated.Priority)
	assert.Equal(t, entity.StatusPendingReview, updated.Status, "field updates never transition status")

	entries := st.ListAuditLog(claim.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ActionClaimUpdated, entries[0].Action)

	meta, ok := entries[0].Metadata.(entity.ClaimUpdatedMeta)
	require.True(t, ok)
	assert.Equal(t, entity.PriorityLow, meta.Updates["priority"])
	assert.Equal(t, 3100.00, meta.Updates["totalEstimate"])
}

func TestEngine_UpdateFields_RejectsStatusChange(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	status := entity.StatusApproved
	_, err := engine.UpdateFields(context.Background(), claim.ID, &entity.ClaimPatch{Status: &status}, "agent")
	assert.ErrorIs(t, err, ErrValidation)

	got, getErr := st.GetClaim(claim.ID)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusPendingReview, got.Status)
	assert.Empty(t, st.ListAuditLog(claim.ID))
}

func TestEngine_UpdateFields_EmptyPatch(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)

	_, err := engine.UpdateFields(context.Background(), claim.ID, &entity.ClaimPatch{}, "agent")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, st.ListAuditLog(claim.ID))
}

func TestEngine_BatchApprove(t *testing.T) {
	engine, st := newTestEngine(t)
	first := seedClaim(st, "CLM-BATCH-1", entity.StatusPendingReview, confidencePtr(entity.ConfidenceHigh))
	second := seedClaim(st, "CLM-BATCH-2", entity.StatusPendingReview, confidencePtr(entity.ConfidenceHigh))
	third := seedClaim(st, "CLM-BATCH-3", entity.StatusPendingReview, confidencePtr(entity.ConfidenceMedium))

	result, err := engine.BatchApprove(context.Background(), entity.ConfidenceHigh, "Sarah Johnson")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Approved)
	assert.Equal(t, entity.ConfidenceHigh, result.Confidence)
	assert.Len(t, result.Claims, 2)
	assert.Empty(t, result.Failures)

	for _, id := range []string{first.ID, second.ID} {
		claim, getErr := st.GetClaim(id)
		require.NoError(t, getErr)
		assert.Equal(t, entity.StatusApproved, claim.Status)
		require.NotNil(t, claim.AgentNotes)
		assert.Equal(t, "Auto-approved via batch approval for high confidence claims", *claim.AgentNotes)

		entries := st.ListAuditLog(id)
		require.Len(t, entries, 1)
		assert.Equal(t, entity.ActionClaimBatchApproved, entries[0].Action)

		meta, ok := entries[0].Metadata.(entity.BatchApprovedMeta)
		require.True(t, ok)
		assert.Equal(t, entity.ConfidenceHigh, meta.Confidence)
		assert.Equal(t, 2, meta.BatchSize)
	}

	// The medium-confidence claim is untouched
	unchanged, getErr := st.GetClaim(third.ID)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusPendingReview, unchanged.Status)
	assert.Empty(t, st.ListAuditLog(third.ID))
}

func TestEngine_BatchApprove_SkipsNonPendingAndOtherTiers(t *testing.T) {
	engine, st := newTestEngine(t)
	approved := seedClaim(st, "CLM-BATCH-1", entity.StatusApproved, confidencePtr(entity.ConfidenceHigh))
	rejected := seedClaim(st, "CLM-BATCH-2", entity.StatusRejected, confidencePtr(entity.ConfidenceHigh))
	noTier := seedClaim(st, "CLM-BATCH-3", entity.StatusPendingReview, nil)

	result, err := engine.BatchApprove(context.Background(), entity.ConfidenceHigh, "agent")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Approved)
	assert.Empty(t, result.Claims)

	for _, claim := range []*entity.Claim{approved, rejected, noTier} {
		got, getErr := st.GetClaim(claim.ID)
		require.NoError(t, getErr)
		assert.Equal(t, claim.Status, got.Status)
	}
}

func TestEngine_BatchApprove_ZeroCandidates(t *testing.T) {
	engine, _ := newTestEngine(t)

	result, err := engine.BatchApprove(context.Background(), entity.ConfidenceLow, "agent")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Approved)
	assert.Empty(t, result.Claims)
	assert.Empty(t, result.Failures)
}

func TestEngine_BatchApprove_UnknownTier(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.BatchApprove(context.Background(), "very-high", "agent")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEngine_ResetDemoData(t *testing.T) {
	st := store.NewSeededMemStore()
	engine := NewEngine(st, zap.NewNop())
	ctx := context.Background()

	// Mutate a seed claim, then reset
	result, err := engine.BatchApprove(ctx, entity.ConfidenceHigh, "agent")
	require.NoError(t, err)
	require.NotZero(t, result.Approved)

	require.NoError(t, engine.ResetDemoData(ctx, "agent"))

	claims := engine.ListClaims(ctx)
	assert.Len(t, claims, store.SeedClaimCount)

	pendingHigh := 0
	for _, claim := range claims {
		if claim.Status == entity.StatusPendingReview &&
			claim.AIConfidence != nil && *claim.AIConfidence == entity.ConfidenceHigh {
			pendingHigh++
		}
	}
	assert.Equal(t, 2, pendingHigh, "reset restores the seed's pending high-confidence claims")
}

func TestEngine_StatusDomainIsClosed(t *testing.T) {
	st := store.NewSeededMemStore()
	engine := NewEngine(st, zap.NewNop())
	ctx := context.Background()

	// Exercise a mix of transitions, then check every observable status
	_, err := engine.BatchApprove(ctx, entity.ConfidenceHigh, "agent")
	require.NoError(t, err)

	valid := map[string]bool{
		entity.StatusPendingReview: true,
		entity.StatusApproved:      true,
		entity.StatusRejected:      true,
		entity.StatusSentToShop:    true,
	}
	for _, claim := range engine.ListClaims(ctx) {
		assert.True(t, valid[claim.Status], "claim %s has status %q outside the closed domain", claim.ClaimNumber, claim.Status)
	}
}

func TestEngine_FullLifecycleAuditTrail(t *testing.T) {
	engine, st := newTestEngine(t)
	claim := seedClaim(st, "CLM-TEST-1", entity.StatusPendingReview, nil)
	ctx := context.Background()

	estimate := 2500.00
	_, err := engine.UpdateFields(ctx, claim.ID, &entity.ClaimPatch{TotalEstimate: &estimate}, "Sarah Johnson")
	require.NoError(t, err)
	_, err = engine.Approve(ctx, claim.ID, "approved after estimate review", "Sarah Johnson")
	require.NoError(t, err)
	_, err = engine.SendToShop(ctx, claim.ID, "shop-3", "standard queue", "Michael Chen")
	require.NoError(t, err)

	entries := st.ListAuditLog(claim.ID)
	require.Len(t, entries, 3, "one audit entry per operation")

	// Newest first
	assert.Equal(t, entity.ActionSentToShop, entries[0].Action)
	assert.Equal(t, entity.ActionClaimApproved, entries[1].Action)
	assert.Equal(t, entity.ActionClaimUpdated, entries[2].Action)
}
