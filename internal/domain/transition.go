package domain

// TransitionDecision is the outcome of validating a status change.
// Callers must branch on all three outcomes; NeedsReason and
// NeedsManagerOverride are follow-up requirements, not failures.
type TransitionDecision int

const (
	DecisionAllow TransitionDecision = iota
	DecisionNeedsReason
	DecisionNeedsManagerOverride
)

func (d TransitionDecision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionNeedsReason:
		return "needs-reason"
	case DecisionNeedsManagerOverride:
		return "needs-manager-override"
	}
	return "unknown"
}

// ValidateTransition decides whether a status change is allowed, needs
// a reason, or needs a manager override. Rules apply in order, first
// match wins:
//
//  1. No-op transitions are always allowed.
//  2. Marking someone Did Not Attend needs an audit reason.
//  3. Backward moves (undoing a check-in, resurrecting a DNA) during a
//     live event need explicit manager authority.
//  4. Everything else — the forward check-in flow — is allowed.
//
// Pure: consults no storage, mutates nothing. The caller persists the
// new status only after Allow.
func ValidateTransition(current, requested AttendanceStatus, eventInProgress, hasManagerOverride bool) TransitionDecision {
	if requested == current {
		return DecisionAllow
	}
	if requested == StatusDidNotAttend {
		return DecisionNeedsReason
	}
	if isBackward(current, requested) && eventInProgress && !hasManagerOverride {
		return DecisionNeedsManagerOverride
	}
	return DecisionAllow
}

// isBackward reports whether moving current -> requested reverses the
// natural preregistered -> walkin -> checkedin progression.
func isBackward(current, requested AttendanceStatus) bool {
	switch current {
	case StatusCheckedIn:
		return requested == StatusPreregistered || requested == StatusWalkIn
	case StatusDidNotAttend:
		return true
	}
	return false
}
