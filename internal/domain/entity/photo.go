package entity

import "time"

// Photo represents one image associated with a claim and photo category
type Photo struct {
	ID           string    `json:"id"`
	ClaimID      string    `json:"claimId"`
	Category     string    `json:"category"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	IsPrimary    bool      `json:"isPrimary"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
