package workflow

// Trigger represents an agent action that can cause a status transition
type Trigger string

const (
	TriggerApprove    Trigger = "APPROVE"
	TriggerReject     Trigger = "REJECT"
	TriggerSendToShop Trigger = "SEND_TO_SHOP"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
