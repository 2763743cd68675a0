package workflow

// State represents a claim status in the review lifecycle
type State string

const (
	StatePendingReview State = "pending_review"
	StateApproved      State = "approved"
	StateRejected      State = "rejected"
	StateSentToShop    State = "sent_to_shop"
)

var validStates = map[State]bool{
	StatePendingReview: true,
	StateApproved:      true,
	StateRejected:      true,
	StateSentToShop:    true,
}

var terminalStates = map[State]bool{
	StateRejected:   true,
	StateSentToShop: true,
}

// IsTerminal returns true if the state permits no further transitions
func (s State) IsTerminal() bool {
	return terminalStates[s]
}

// IsValid returns true if the state is a valid claim status
func (s State) IsValid() bool {
	return validStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}
