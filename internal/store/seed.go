package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/sabrina-lives/scale-claims-case-study/internal/domain/entity"
)

// SeedClaimCount is the number of claims in the canonical seed dataset
const SeedClaimCount = 6

// SeedClaimNumbers lists the claim numbers in the canonical seed dataset
var SeedClaimNumbers = []string{
	"CLM-2024-001811",
	"CLM-2024-001823",
	"CLM-2024-001847",
	"CLM-2024-001852",
	"CLM-2024-001858",
	"CLM-2024-001860",
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// loadSeed populates the canonical demo dataset. Callers must hold the store
// write lock. CLM-2024-001847 is the fully fleshed-out claim the dashboard
// opens on, carrying damage items, photos, a cost breakdown and intake audit
// history; the remaining claims cover every status and confidence tier.
func loadSeed(s *MemStore) {
	now := s.now()

	primary := &entity.Claim{
		ID:                  uuid.NewString(),
		ClaimNumber:         "CLM-2024-001847",
		PolicyholderName:    "Michael Rodriguez",
		VehicleInfo:         "2022 Toyota Camry",
		VIN:                 "4T1C11AK*N*123456",
		IncidentDate:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		IncidentDescription: "Parking lot collision",
		Status:              entity.StatusPendingReview,
		Priority:            entity.PriorityHigh,
		AIConfidence:        strPtr(entity.ConfidenceHigh),
		SubmittedAt:         now.Add(-2 * time.Hour),
		TotalEstimate:       floatPtr(2847.00),
		AssignedAgent:       strPtr("Sarah Johnson"),
	}
	s.claims[primary.ID] = primary

	seedDamageItems(s, primary.ID)
	seedPhotos(s, primary.ID, now)
	seedCostLines(s, primary.ID)
	seedAuditHistory(s, primary.ID, now)

	others := []*entity.Claim{
		{
			ClaimNumber:         "CLM-2024-001852",
			PolicyholderName:    "Jennifer Walsh",
			VehicleInfo:         "2021 Honda CR-V",
			VIN:                 "5J6RW2H8*M*204519",
			IncidentDate:        time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			IncidentDescription: "Rear-ended at traffic light",
			Status:              entity.StatusPendingReview,
			Priority:            entity.PriorityMedium,
			AIConfidence:        strPtr(entity.ConfidenceHigh),
			SubmittedAt:         now.Add(-26 * time.Hour),
			TotalEstimate:       floatPtr(1620.00),
			AssignedAgent:       strPtr("Sarah Johnson"),
		},
		{
			ClaimNumber:         "CLM-2024-001858",
			PolicyholderName:    "David Kim",
			VehicleInfo:         "2023 Ford F-150",
			VIN:                 "1FTFW1E5*P*887210",
			IncidentDate:        time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
			IncidentDescription: "Side-swipe on highway merge",
			Status:              entity.StatusPendingReview,
			Priority:            entity.PriorityMedium,
			AIConfidence:        strPtr(entity.ConfidenceMedium),
			SubmittedAt:         now.Add(-20 * time.Hour),
			TotalEstimate:       floatPtr(4310.50),
			AssignedAgent:       strPtr("Sarah Johnson"),
		},
		{
			ClaimNumber:         "CLM-2024-001860",
			PolicyholderName:    "Angela Foster",
			VehicleInfo:         "2019 Subaru Outback",
			VIN:                 "4S4BSANC*K*331172",
			IncidentDate:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			IncidentDescription: "Shopping cart damage to rear door",
			Status:              entity.StatusPendingReview,
			Priority:            entity.PriorityLow,
			AIConfidence:        strPtr(entity.ConfidenceLow),
			SubmittedAt:         now.Add(-8 * time.Hour),
			TotalEstimate:       floatPtr(890.00),
		},
		{
			ClaimNumber:         "CLM-2024-001823",
			PolicyholderName:    "Robert Chen",
			VehicleInfo:         "2020 Tesla Model 3",
			VIN:                 "5YJ3E1EA*L*560094",
			IncidentDate:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			IncidentDescription: "Hail damage across hood and roof",
			Status:              entity.StatusApproved,
			Priority:            entity.PriorityHigh,
			AIConfidence:        strPtr(entity.ConfidenceHigh),
			SubmittedAt:         now.Add(-5 * 24 * time.Hour),
			TotalEstimate:       floatPtr(5400.00),
			AgentNotes:          strPtr("Estimate verified against regional hail repair rates"),
			AssignedAgent:       strPtr("Sarah Johnson"),
		},
		{
			ClaimNumber:         "CLM-2024-001811",
			PolicyholderName:    "Maria Santos",
			VehicleInfo:         "2018 BMW 330i",
			VIN:                 "WBA8B9C5*J*772630",
			IncidentDate:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			IncidentDescription: "Low-speed collision with parking bollard",
			Status:              entity.StatusSentToShop,
			Priority:            entity.PriorityMedium,
			AIConfidence:        strPtr(entity.ConfidenceMedium),
			SubmittedAt:         now.Add(-9 * 24 * time.Hour),
			TotalEstimate:       floatPtr(3150.75),
			AgentNotes:          strPtr("Approved after estimate review"),
			AdjusterNotes:       strPtr("Customer prefers OEM parts"),
			AssignedAgent:       strPtr("Michael Chen"),
			AssignedShopID:      strPtr("shop-2"),
		},
	}

	for _, claim := range others {
		claim.ID = uuid.NewString()
		s.claims[claim.ID] = claim
	}
}

func seedDamageItems(s *MemStore, claimID string) {
	items := []*entity.DamageItem{
		{
			ClaimID:     claimID,
			Type:        "paint_scratches",
			Severity:    entity.SeverityModerate,
			Location:    "front_bumper",
			Description: "Paint Scratches",
			Area:        `12" x 4"`,
			Depth:       "Surface level",
			RepairType:  "Paint & buff",
			Confidence:  87.00,
			Coordinates: entity.Coordinates{X: 35, Y: 45, Width: 25, Height: 15},
		},
		{
			ClaimID:     claimID,
			Type:        "structural_dent",
			Severity:    entity.SeveritySevere,
			Location:    "front_bumper",
			Description: "Structural Dent",
			Area:        `8" x 6"`,
			Depth:       `2.5" deep`,
			RepairType:  "Panel replacement",
			Confidence:  94.00,
			Coordinates: entity.Coordinates{X: 20, Y: 60, Width: 15, Height: 10},
		},
		{
			ClaimID:     claimID,
			Type:        "surface_abrasion",
			Severity:    entity.SeverityMinor,
			Location:    "headlight_housing",
			Description: "Minor Scuff",
			Area:        `3" x 1"`,
			Depth:       "Surface only",
			RepairType:  "Polish/compound",
			Confidence:  76.00,
			Coordinates: entity.Coordinates{X: 45, Y: 35, Width: 10, Height: 8},
		},
	}

	for _, item := range items {
		item.ID = uuid.NewString()
		s.damage[item.ID] = item
	}
}

func seedPhotos(s *MemStore, claimID string, now time.Time) {
	uploaded := now.Add(-2 * time.Hour)
	photos := []*entity.Photo{
		{
			ClaimID:      claimID,
			Category:     "front_bumper",
			URL:          "https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=150"),
			IsPrimary:    true,
			UploadedAt:   uploaded,
		},
		{
			ClaimID:      claimID,
			Category:     "front_bumper",
			URL:          "https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=150"),
			UploadedAt:   uploaded,
		},
		{
			ClaimID:      claimID,
			Category:     "side_panel",
			URL:          "https://images.unsplash.com/photo-1609244314066-f69aae9f7f82?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1609244314066-f69aae9f7f82?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=150"),
			UploadedAt:   uploaded,
		},
	}

	for _, photo := range photos {
		photo.ID = uuid.NewString()
		s.photos[photo.ID] = photo
	}
}

func seedCostLines(s *MemStore, claimID string) {
	lines := []*entity.CostLine{
		{
			ClaimID:     claimID,
			Category:    entity.CostCategoryLabor,
			Description: "Labor",
			Amount:      1020.00,
			Hours:       floatPtr(12.00),
			Rate:        floatPtr(85.00),
		},
		{
			ClaimID:     claimID,
			Category:    entity.CostCategoryParts,
			Description: "Front bumper assembly",
			Amount:      1485.00,
		},
		{
			ClaimID:     claimID,
			Category:    entity.CostCategoryPaint,
			Description: "Paint & Materials",
			Amount:      285.00,
		},
		{
			ClaimID:     claimID,
			Category:    entity.CostCategorySupplies,
			Description: "Shop Supplies",
			Amount:      57.00,
		},
	}

	for _, line := range lines {
		line.ID = uuid.NewString()
		s.costLines[line.ID] = line
	}
}

func seedAuditHistory(s *MemStore, claimID string, now time.Time) {
	s.appendAuditLogLocked(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionClaimSubmitted,
		Description: "Claim Submitted",
		PerformedBy: "Michael Rodriguez",
		Timestamp:   now.Add(-3 * time.Hour),
		Metadata:    entity.ClaimSubmittedMeta{},
	})
	s.appendAuditLogLocked(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionPhotosUploaded,
		Description: "Photos Uploaded",
		PerformedBy: "system",
		Timestamp:   now.Add(-2 * time.Hour),
		Metadata:    entity.PhotosUploadedMeta{PhotoCount: 9, ProcessedByCV: true},
	})
	s.appendAuditLogLocked(&entity.AuditLogEntry{
		ClaimID:     claimID,
		Action:      entity.ActionAIAnalysisCompleted,
		Description: "AI Analysis Completed",
		PerformedBy: "system",
		Timestamp:   now.Add(-2 * time.Hour),
		Metadata:    entity.AIAnalysisMeta{Confidence: "87%", AreasIdentified: 3},
	})
}
