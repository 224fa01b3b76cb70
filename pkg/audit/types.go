package audit

import (
	"fmt"
	"time"
)

// Result represents the outcome of an audited action.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
	ResultError   Result = "error"
)

// Event represents a single audit log entry.
type Event struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	User      string         `json:"user,omitempty"`
	Actor     string         `json:"actor,omitempty"`
	Result    Result         `json:"result"`
	Error     string         `json:"error,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Validate checks if the event has all required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	return nil
}

// EventOption applies configuration to an Event during creation.
type EventOption func(*Event)

// WithUser sets the subject user the action was performed on.
func WithUser(user string) EventOption {
	return func(e *Event) {
		e.User = user
	}
}

// WithActor sets who performed the action.
func WithActor(actor string) EventOption {
	return func(e *Event) {
		e.Actor = actor
	}
}

// WithResult sets the event result.
func WithResult(result Result) EventOption {
	return func(e *Event) {
		e.Result = result
	}
}

// WithError sets the result to error and records the cause.
func WithError(err error) EventOption {
	return func(e *Event) {
		e.Result = ResultError
		if err != nil {
			e.Error = err.Error()
		}
	}
}

// WithMetadata adds metadata to the event.
func WithMetadata(key string, value any) EventOption {
	return func(e *Event) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}
