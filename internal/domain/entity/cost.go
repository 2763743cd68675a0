package entity

// CostLine represents one line item of a repair estimate.
// When both Hours and Rate are set, Amount is expected to equal Hours*Rate;
// the store does not enforce this, matching the upstream estimate data.
type CostLine struct {
	ID          string   `json:"id"`
	ClaimID     string   `json:"claimId"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Hours       *float64 `json:"hours,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}
