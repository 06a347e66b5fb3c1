package contract

import "fmt"

// ValidationError reports a request field that failed validation. Always
// surfaced to the caller with the offending field named.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UnknownCategoryError reports a category outside the fixed taxonomy.
// Categories are never silently defaulted.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

// SessionNotFoundError reports a defend call against a session that does
// not exist in this process. Sessions do not survive restarts.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %s not found; run a new analysis to start a session", e.SessionID)
}
