package domain

// RolloverDue reports whether an event's stale attendance should be
// auto-transitioned. All parameters are UTC epoch seconds; timezone
// display is a presentation concern and never enters this check.
func RolloverDue(eventEndEpoch, graceSeconds, nowEpoch int64) bool {
	return nowEpoch >= eventEndEpoch+graceSeconds
}

// RolloverReason is the audit reason attached to every record changed
// by the auto-rollover job.
const RolloverReason = "auto-rollover"
