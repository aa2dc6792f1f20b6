package scheduler

import "fmt"

// MalformedTimeError is returned when a time value cannot be split into an hour
// and a minute integer.
type MalformedTimeError struct {
	Value string
	Event string
	Field string
	Err   error
}

func (e *MalformedTimeError) Error() string {
	if e.Event == "" && e.Field == "" {
		return fmt.Sprintf("malformed time %q", e.Value)
	}
	return fmt.Sprintf("malformed %s time %q for event %q", e.Field, e.Value, e.Event)
}

func (e *MalformedTimeError) Unwrap() error {
	return e.Err
}

// InvalidRangeError is returned by strict validation for well-formed times that
// fall outside a single day or describe an empty interval.
type InvalidRangeError struct {
	Event  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range for event %q: %s", e.Event, e.Reason)
}
