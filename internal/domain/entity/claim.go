package entity

import "time"

// Claim represents one insurance claim under review
type Claim struct {
	ID                  string     `json:"id"`
	ClaimNumber         string     `json:"claimNumber"`
	PolicyholderName    string     `json:"policyholderName"`
	VehicleInfo         string     `json:"vehicleInfo"`
	VIN                 string     `json:"vin"`
	IncidentDate        time.Time  `json:"incidentDate"`
	IncidentDescription string     `json:"incidentDescription"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	AIConfidence        *string    `json:"aiConfidence,omitempty"`
	SubmittedAt         time.Time  `json:"submittedAt"`
	TotalEstimate       *float64   `json:"totalEstimate,omitempty"`
	AgentNotes          *string    `json:"agentNotes,omitempty"`
	AdjusterNotes       *string    `json:"adjusterNotes,omitempty"`
	AssignedAgent       *string    `json:"assignedAgent,omitempty"`
	AssignedShopID      *string    `json:"assignedShopId,omitempty"`
}

// ClaimPatch is a partial update to a claim. Nil fields are left untouched.
// Status and AssignedShopID are settable only by the workflow engine; the
// generic field-update operation rejects patches that carry them.
type ClaimPatch struct {
	Status              *string  `json:"status,omitempty"`
	Priority            *string  `json:"priority,omitempty"`
	IncidentDescription *string  `json:"incidentDescription,omitempty"`
	TotalEstimate       *float64 `json:"totalEstimate,omitempty"`
	AgentNotes          *string  `json:"agentNotes,omitempty"`
	AdjusterNotes       *string  `json:"adjusterNotes,omitempty"`
	AssignedAgent       *string  `json:"assignedAgent,omitempty"`
	AssignedShopID      *string  `json:"assignedShopId,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p *ClaimPatch) IsZero() bool {
	return p.Status == nil &&
		p.Priority == nil &&
		p.IncidentDescription == nil &&
		p.TotalEstimate == nil &&
		p.AgentNotes == nil &&
		p.AdjusterNotes == nil &&
		p.AssignedAgent == nil &&
		p.AssignedShopID == nil
}

// Fields returns the patch as a key/value map of the fields it actually
// carries, used for the claim_updated audit metadata.
func (p *ClaimPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Priority != nil {
		fields["priority"] = *p.Priority
	}
	if p.IncidentDescription != nil {
		fields["incidentDescription"] = *p.IncidentDescription
	}
	if p.TotalEstimate != nil {
		fields["totalEstimate"] = *p.TotalEstimate
	}
	if p.AgentNotes != nil {
		fields["agentNotes"] = *p.AgentNotes
	}
	if p.AdjusterNotes != nil {
		fields["adjusterNotes"] = *p.AdjusterNotes
	}
	if p.AssignedAgent != nil {
		fields["assignedAgent"] = *p.AssignedAgent
	}
	if p.AssignedShopID != nil {
		fields["assignedShopId"] = *p.AssignedShopID
	}
	return fields
}
