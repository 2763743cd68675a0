package entity

// Coordinates locates a damage region on a photo, in percent of image extent
type Coordinates struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DamageItem represents one AI-identified damage region on a claim's vehicle
type DamageItem struct {
	ID          string      `json:"id"`
	ClaimID     string      `json:"claimId"`
	Type        string      `json:"type"`
	Severity    string      `json:"severity"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Area        string      `json:"area,omitempty"`
	Depth       string      `json:"depth,omitempty"`
	RepairType  string      `json:"repairType,omitempty"`
	Confidence  float64     `json:"confidence"`
	Coordinates Coordinates `json:"coordinates"`
}
