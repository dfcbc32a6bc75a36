package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// On success, State is the new state to persist. On rejection, Err carries the reason and
// nothing must be persisted.
//
// Construct it only with SuccessDecision or RejectedDecision.
type DecisionResult[S any] struct {
	Outcome string // "success" or "rejected"
	State   S
	Err     error
}

const (
	successOutcome  = "success"
	rejectedOutcome = "rejected"
)

// SuccessDecision creates a DecisionResult carrying the new state.
func SuccessDecision[S any](state S) DecisionResult[S] {
	return DecisionResult[S]{
		Outcome: successOutcome,
		State:   state,
	}
}

// RejectedDecision creates a DecisionResult for a business rule violation.
func RejectedDecision[S any](reason error) DecisionResult[S] {
	return DecisionResult[S]{
		Outcome: rejectedOutcome,
		Err:     reason,
	}
}

// HasStateToSave returns true if the decision changed the state.
func (r DecisionResult[S]) HasStateToSave() bool {
	return r.Outcome == successOutcome
}

// IsRejected returns true for a business rule violation.
func (r DecisionResult[S]) IsRejected() bool {
	return r.Outcome == rejectedOutcome
}
