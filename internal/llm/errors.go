package llm

import "errors"

// Sentinel errors for model calls. The defend engine treats every one
// of them as a cue to fall back to template answers rather than fail
// the question.
var (
	// ErrUnavailable means the model server could not be reached.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout means the call exceeded the task's configured deadline.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the model answered but its output did not
	// contain the expected JSON payload.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted means every attempt failed for a reason other
	// than a timeout or a dead connection.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
