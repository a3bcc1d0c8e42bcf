package wasender

import (
	"errors"
	"fmt"
)

// ErrUnhandledEvent is returned by Dispatch for an Event that is not one of
// the known variants.
var ErrUnhandledEvent = errors.New("unhandled webhook event")

// UnknownEventTypeError means the "event" field was missing or not a known
// event type. Callers should log the delivery and skip it.
type UnknownEventTypeError struct {
	Event string
}

func (e *UnknownEventTypeError) Error() string {
	if e.Event == "" {
		return "unknown event type: event field missing"
	}
	return fmt.Sprintf("unknown event type %q", e.Event)
}

// SchemaValidationError means the payload of a known event type does not
// match its shape. The delivery will never become valid and should be rejected.
type SchemaValidationError struct {
	Event EventType
	// Field is the wire path of the offending field, e.g. "data.key.id".
	// Empty when the body is not a JSON object at all.
	Field  string
	Reason string
	Err    error
}

func (e *SchemaValidationError) Error() string {
	prefix := "invalid webhook payload"
	if e.Event != "" {
		prefix = fmt.Sprintf("invalid %s payload", e.Event)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", prefix, e.Reason)
	}
	return fmt.Sprintf("%s: field %s: %s", prefix, e.Field, e.Reason)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

// IsUnknownEventType checks if err was caused by an unrecognised event tag.
func IsUnknownEventType(err error) bool {
	var target *UnknownEventTypeError
	return errors.As(err, &target)
}

// IsSchemaValidation checks if err was caused by a malformed payload.
func IsSchemaValidation(err error) bool {
	var target *SchemaValidationError
	return errors.As(err, &target)
}
