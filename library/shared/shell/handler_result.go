package shell

// HandlerResult represents the outcome of a command handler execution.
// The error returned next to it is a report for the caller: a degraded load, a failed save, or both.
type HandlerResult struct {
	// Outcome is StatusSuccess, StatusRejected or StatusError.
	Outcome string

	// Reason is the business rule that rejected the command, nil otherwise.
	Reason error

	// Degraded is true when the table could not be loaded and the decision was made on an empty table.
	Degraded bool
}

// NewSuccessResult creates a HandlerResult for a command whose new state was saved.
func NewSuccessResult(degraded bool) HandlerResult {
	return HandlerResult{Outcome: StatusSuccess, Degraded: degraded}
}

// NewRejectedResult creates a HandlerResult for a command rejected by a business rule. Nothing was saved.
func NewRejectedResult(reason error, degraded bool) HandlerResult {
	return HandlerResult{Outcome: StatusRejected, Reason: reason, Degraded: degraded}
}

// NewErrorResult creates a HandlerResult for a command whose new state could not be saved.
func NewErrorResult(degraded bool) HandlerResult {
	return HandlerResult{Outcome: StatusError, Degraded: degraded}
}

// Succeeded reports whether the command changed and saved the state.
func (r HandlerResult) Succeeded() bool {
	return r.Outcome == StatusSuccess
}
