package workflow

import (
	domainwf "github.com/sabrina-lives/scale-claims-case-study/internal/domain/workflow"
)

// BuildClaimStateMachine creates a state machine configured for the claim
// review lifecycle:
//
//	pending_review -> approved -> sent_to_shop
//	pending_review -> rejected
//
// rejected and sent_to_shop are terminal.
func BuildClaimStateMachine(initialState domainwf.State) domainwf.StateMachine {
	builder := domainwf.NewBuilder()

	builder.Configure(domainwf.StatePendingReview).
		Permit(domainwf.TriggerApprove, domainwf.StateApproved).
		Permit(domainwf.TriggerReject, domainwf.StateRejected)

	builder.Configure(domainwf.StateApproved).
		Permit(domainwf.TriggerSendToShop, domainwf.StateSentToShop)

	return builder.Build(initialState)
}
