// Package api exposes the workflow engine over HTTP. It stays thin: input
// decoding, actor resolution and error-to-status mapping, nothing else.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sabrina-lives/scale-claims-case-study/internal/application/workflow"
	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
	"github.com/sabrina-lives/scale-claims-case-study/internal/store"
)

// Handler handles claim review API requests
type Handler struct {
	engine       workflow.Engine
	defaultActor string
	logger       *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(engine workflow.Engine, defaultActor string, logger *zap.Logger) *Handler {
	return &Handler{
		engine:       engine,
		defaultActor: defaultActor,
		logger:       logger,
	}
}

type approveRequest struct {
	Notes string `json:"notes"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type sendToShopRequest struct {
	ShopID string `json:"shopId"`
	Notes  string `json:"notes"`
}

type batchApproveRequest struct {
	Confidence string `json:"confidence"`
}

type batchApproveResponse struct {
	Message string `json:"message"`
	*workflow.BatchResult
}

// actor resolves the acting user for a request. The demo has no auth layer;
// the X-Actor header stands in for the session identity.
func (h *Handler) actor(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor"); actor != "" {
		return actor
	}
	return h.defaultActor
}

// ListClaims returns all claims
func (h *Handler) ListClaims(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ListClaims(c.Request.Context()))
}

// GetClaim returns one claim by id
func (h *Handler) GetClaim(c *gin.Context) {
	claim, err := h.engine.GetClaim(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// GetClaimByNumber returns one claim by its human-facing claim number
func (h *Handler) GetClaimByNumber(c *gin.Context) {
	claim, err := h.engine.GetClaimByNumber(c.Request.Context(), c.Param("claimNumber"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// PatchClaim merges a field patch into a claim
func (h *Handler) PatchClaim(c *gin.Context) {
	var patch entity.ClaimPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	claim, err := h.engine.UpdateFields(c.Request.Context(), c.Param("id"), &patch, h.actor(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// ApproveClaim approves a pending claim
func (h *Handler) ApproveClaim(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	claim, err := h.engine.Approve(c.Request.Context(), c.Param("id"), req.Notes, h.actor(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// RejectClaim rejects a pending claim; the reason is mandatory
func (h *Handler) RejectClaim(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	claim, err := h.engine.Reject(c.Request.Context(), c.Param("id"), req.Reason, h.actor(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// SendToShop routes an approved claim to a repair shop
func (h *Handler) SendToShop(c *gin.Context) {
	var req sendToShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	claim, err := h.engine.SendToShop(c.Request.Context(), c.Param("id"), req.ShopID, req.Notes, h.actor(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// BatchApprove approves all pending claims in a confidence tier. Partial
// success still returns 200; per-claim failures ride along in the body.
func (h *Handler) BatchApprove(c *gin.Context) {
	req := batchApproveRequest{Confidence: entity.ConfidenceHigh}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Confidence == "" {
			req.Confidence = entity.ConfidenceHigh
		}
	}

	result, err := h.engine.BatchApprove(c.Request.Context(), req.Confidence, h.actor(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, batchApproveResponse{
		Message:     fmt.Sprintf("Batch approved %d %s confidence claims", result.Approved, result.Confidence),
		BatchResult: result,
	})
}

// ListDamageItems returns the damage items for a claim
func (h *Handler) ListDamageItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ListDamageItems(c.Request.Context(), c.Param("id")))
}

// ListPhotos returns the photos for a claim
func (h *Handler) ListPhotos(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ListPhotos(c.Request.Context(), c.Param("id")))
}

// ListCostBreakdown returns the cost breakdown lines for a claim
func (h *Handler) ListCostBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ListCostLines(c.Request.Context(), c.Param("id")))
}

// ListAuditLog returns a claim's audit trail, newest first
func (h *Handler) ListAuditLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.ListAuditLog(c.Request.Context(), c.Param("id")))
}

// ResetData restores the store to the canonical seed dataset
func (h *Handler) ResetData(c *gin.Context) {
	if err := h.engine.ResetDemoData(c.Request.Context(), h.actor(c)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data reset to initial state successfully"})
}

// writeError converts workflow errors to HTTP responses
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Claim not found"})
	case errors.Is(err, workflow.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, workflow.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Unexpected workflow error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
