package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
)

// MemStore is an in-memory Store. Child records are found by linear scan over
// the claim id back-reference, which is fine at demo scale.
type MemStore struct {
	mu         sync.RWMutex
	claims     map[string]*entity.Claim
	damage     map[string]*entity.DamageItem
	photos     map[string]*entity.Photo
	costLines  map[string]*entity.CostLine
	auditLog   map[string]*entity.AuditLogEntry
	seq        int64
	now        func() time.Time
}

// MemStoreOption configures a MemStore
type MemStoreOption func(*MemStore)

// WithClock overrides the store's clock, used by tests that need
// deterministic timestamps.
func WithClock(now func() time.Time) MemStoreOption {
	return func(s *MemStore) {
		s.now = now
	}
}

// NewMemStore creates an empty store
func NewMemStore(opts ...MemStoreOption) *MemStore {
	s := &MemStore{
		claims:    make(map[string]*entity.Claim),
		damage:    make(map[string]*entity.DamageItem),
		photos:    make(map[string]*entity.Photo),
		costLines: make(map[string]*entity.CostLine),
		auditLog:  make(map[string]*entity.AuditLogEntry),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeededMemStore creates a store pre-loaded with the canonical seed dataset
func NewSeededMemStore(opts ...MemStoreOption) *MemStore {
	s := NewMemStore(opts...)
	s.ResetToSeed()
	return s
}

// GetClaim returns the claim with the given id, or ErrNotFound
func (s *MemStore) GetClaim(id string) (*entity.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claim, exists := s.claims[id]
	if !exists {
		return nil, ErrNotFound
	}
	return cloneClaim(claim), nil
}

// GetClaimByNumber returns the claim with the given human-facing claim
// number, or ErrNotFound
func (s *MemStore) GetClaimByNumber(claimNumber string) (*entity.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, claim := range s.claims {
		if claim.ClaimNumber == claimNumber {
			return cloneClaim(claim), nil
		}
	}
	return nil, ErrNotFound
}

// ListClaims returns all claims. Order is unspecified; callers must not
// assume anything about it.
func (s *MemStore) ListClaims() []*entity.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claims := make([]*entity.Claim, 0, len(s.claims))
	for _, claim := range s.claims {
		claims = append(claims, cloneClaim(claim))
	}
	return claims
}

// CreateClaim stores a new claim, assigning a fresh id and defaulting the
// status and submission time when unset
func (s *MemStore) CreateClaim(claim *entity.Claim) *entity.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneClaim(claim)
	stored.ID = uuid.NewString()
	if stored.Status == "" {
		stored.Status = entity.StatusPendingReview
	}
	if stored.SubmittedAt.IsZero() {
		stored.SubmittedAt = s.now()
	}
	s.claims[stored.ID] = stored
	return cloneClaim(stored)
}

// UpdateClaim merges the non-nil patch fields into the existing record.
// Enum domains are not validated here; that is the caller's responsibility.
func (s *MemStore) UpdateClaim(id string, patch *entity.ClaimPatch) (*entity.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, exists := s.claims[id]
	if !exists {
		return nil, ErrNotFound
	}

	if patch.Status != nil {
		claim.Status = *patch.Status
	}
	if patch.Priority != nil {
		claim.Priority = *patch.Priority
	}
	if patch.IncidentDescription != nil {
		claim.IncidentDescription = *patch.IncidentDescription
	}
	if patch.TotalEstimate != nil {
		claim.TotalEstimate = patch.TotalEstimate
	}
	if patch.AgentNotes != nil {
		claim.AgentNotes = patch.AgentNotes
	}
	if patch.AdjusterNotes != nil {
		claim.AdjusterNotes = patch.AdjusterNotes
	}
	if patch.AssignedAgent != nil {
		claim.AssignedAgent = patch.AssignedAgent
	}
	if patch.AssignedShopID != nil {
		claim.AssignedShopID = patch.AssignedShopID
	}

	return cloneClaim(claim), nil
}

// ListDamageItems returns the damage items owned by a claim
func (s *MemStore) ListDamageItems(claimID string) []*entity.DamageItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*entity.DamageItem, 0)
	for _, item := range s.damage {
		if item.ClaimID == claimID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items
}

// CreateDamageItem stores a new damage item with a fresh id
func (s *MemStore) CreateDamageItem(item *entity.DamageItem) *entity.DamageItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ID = uuid.NewString()
	s.damage[stored.ID] = &stored
	copied := stored
	return &copied
}

// ListPhotos returns the photos owned by a claim
func (s *MemStore) ListPhotos(claimID string) []*entity.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photos := make([]*entity.Photo, 0)
	for _, photo := range s.photos {
		if photo.ClaimID == claimID {
			copied := *photo
			photos = append(photos, &copied)
		}
	}
	return photos
}

// CreatePhoto stores a new photo with a fresh id, defaulting the upload time
func (s *MemStore) CreatePhoto(photo *entity.Photo) *entity.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *photo
	stored.ID = uuid.NewString()
	if stored.UploadedAt.IsZero() {
		stored.UploadedAt = s.now()
	}
	s.photos[stored.ID] = &stored
	copied := stored
	return &copied
}

// ListCostLines returns the cost breakdown lines owned by a claim
func (s *MemStore) ListCostLines(claimID string) []*entity.CostLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]*entity.CostLine, 0)
	for _, line := range s.costLines {
		if line.ClaimID == claimID {
			copied := *line
			lines = append(lines, &copied)
		}
	}
	return lines
}

// CreateCostLine stores a new cost breakdown line with a fresh id
func (s *MemStore) CreateCostLine(line *entity.CostLine) *entity.CostLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *line
	stored.ID = uuid.NewString()
	s.costLines[stored.ID] = &stored
	copied := stored
	return &copied
}

// ListAuditLog returns a claim's audit entries sorted newest first. Entries
// appended in the same clock tick keep their append order via Seq.
func (s *MemStore) ListAuditLog(claimID string) []*entity.AuditLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*entity.AuditLogEntry, 0)
	for _, auditEntry := range s.auditLog {
		if auditEntry.ClaimID == claimID {
			copied := *auditEntry
			entries = append(entries, &copied)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Seq > entries[j].Seq
		}
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries
}

// AppendAuditLog stores a new audit entry, assigning id, sequence number and
// (when unset) timestamp. Entries are never mutated or deleted afterwards.
func (s *MemStore) AppendAuditLog(auditEntry *entity.AuditLogEntry) *entity.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendAuditLogLocked(auditEntry)
}

func (s *MemStore) appendAuditLogLocked(auditEntry *entity.AuditLogEntry) *entity.AuditLogEntry {
	stored := *auditEntry
	stored.ID = uuid.NewString()
	s.seq++
	stored.Seq = s.seq
	if stored.Timestamp.IsZero() {
		stored.Timestamp = s.now()
	}
	s.auditLog[stored.ID] = &stored
	copied := stored
	return &copied
}

// ResetToSeed replaces the entire store contents with the canonical seed
// dataset
func (s *MemStore) ResetToSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.claims = make(map[string]*entity.Claim)
	s.damage = make(map[string]*entity.DamageItem)
	s.photos = make(map[string]*entity.Photo)
	s.costLines = make(map[string]*entity.CostLine)
	s.auditLog = make(map[string]*entity.AuditLogEntry)
	s.seq = 0

	loadSeed(s)
}

func cloneClaim(claim *entity.Claim) *entity.Claim {
	copied := *claim
	return &copied
}
