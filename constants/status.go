package constants

// SessionStatus is the canonical status for rows in extraction_sessions.
type SessionStatus string

// Stable values (store these exact strings in DB and on the wire).
const (
	SessionStatusPending    SessionStatus = "pending"    // created, not yet picked up
	SessionStatusProcessing SessionStatus = "processing" // extraction in progress
	SessionStatusCompleted  SessionStatus = "completed"  // terminal success
	SessionStatusFailed     SessionStatus = "failed"     // terminal failure reported by the pipeline
	SessionStatusError      SessionStatus = "error"      // terminal failure outside the pipeline
)

// SessionStatuses holds every allowed value for the session status column.
var SessionStatuses = []string{
	string(SessionStatusPending),
	string(SessionStatusProcessing),
	string(SessionStatusCompleted),
	string(SessionStatusFailed),
	string(SessionStatusError),
}

// IsTerminal reports whether no further status transition is allowed.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionStatusCompleted, SessionStatusFailed, SessionStatusError:
		return true
	}
	return false
}

// ValidationStatus is the per-field outcome stored in validation_records.
type ValidationStatus string

const (
	ValidationStatusValid    ValidationStatus = "valid"
	ValidationStatusInvalid  ValidationStatus = "invalid"
	ValidationStatusPending  ValidationStatus = "pending"
	ValidationStatusReview   ValidationStatus = "review_required"
	ValidationStatusVerified ValidationStatus = "verified"
)

// ValidationStatuses holds every allowed value for the validation status column.
var ValidationStatuses = []string{
	string(ValidationStatusValid),
	string(ValidationStatusInvalid),
	string(ValidationStatusPending),
	string(ValidationStatusReview),
	string(ValidationStatusVerified),
}

// Confidence thresholds carried over from the platform defaults.
const (
	MinConfidenceScore     = 70
	DefaultConfidenceScore = 85
	HighConfidenceScore    = 95
)
